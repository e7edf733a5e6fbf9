// Package apininjas はAPI Ninjas株価APIのクライアントを提供します。
package apininjas

import (
	"os"
	"time"
)

// defaultBaseURL は環境変数未設定時に使用するAPIのベースURLです。
const defaultBaseURL = "https://api.api-ninjas.com"

// Config はAPI Ninjasクライアントの設定を保持します。
type Config struct {
	APIKey  string        // 認証用APIキー（X-Api-Keyヘッダー）
	BaseURL string        // APIのベースURL
	Timeout time.Duration // HTTPリクエストタイムアウト
}

// LoadConfig は環境変数からAPI Ninjasの設定を読み込みます。
func LoadConfig() Config {
	base := os.Getenv("STOCK_API_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("STOCK_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
