// Package http は外部API呼び出しに使うHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は参照API（Wikipedia）呼び出し用のHTTPクライアントを作成します。
//
// 1回の分析で発生するリクエストは数件で、すべて直列に実行されるため、
// アイドル接続は少数に抑えています。timeout が0以下の場合はタイムアウトを設定しません。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	c := &http.Client{Transport: t}
	if timeout > 0 {
		c.Timeout = timeout
	}
	return c
}
