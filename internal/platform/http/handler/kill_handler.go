package handler

import (
	"os"

	"github.com/gin-gonic/gin"
)

// NewKill は /kill エンドポイント用のハンドラーを生成します。
// テストハーネスがコンテナの再起動動作を検証するために使用するもので、
// 呼び出されるとプロセスを即座に終了します。
// exit はテストから差し替えられるよう注入可能にしています。
func NewKill(exit func(code int)) gin.HandlerFunc {
	if exit == nil {
		exit = os.Exit
	}
	return func(c *gin.Context) {
		exit(1)
	}
}
