package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// CLI level messages (info)
		"Rendering %s...":                "%s をレンダリング中...",
		"Poster saved to %s":             "ポスターを %s に保存しました",
		"Render completed in %d ms":      "レンダリングが %d ms で完了しました",
		"Interrupted, shutting down...":  "中断されました。シャットダウン中...",
		"Listening on %s":                "%s で待ち受け中",
		"Server stopped":                 "サーバーを停止しました",

		// Compositor
		"Skipping element %d: %s":                              "要素 %d をスキップします: %s",
		"Background image unavailable, using fill color: %s":   "背景画像を利用できないため塗りつぶし色を使用します: %s",
		"Text layout: family=%s direction=%s lines=%d":         "テキストレイアウト: フォント=%s 方向=%s 行数=%d",

		// Server
		"Generate request: %dx%d scene, %d elements, format=%s": "生成リクエスト: %dx%d シーン, 要素 %d 個, 形式=%s",
		"Generate failed: %s":                                   "生成に失敗しました: %s",

		// Errors
		"Failed to read scene file: %s": "シーンファイルの読み込みに失敗しました: %s",
		"Failed to write output: %s":    "出力の書き込みに失敗しました: %s",
	})
}
