package main

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Generate poster images from declarative scene files.": "宣言的なシーンファイルからポスター画像を生成します。",
		"Log level (debug, info, warn, error)":                 "ログレベル (debug, info, warn, error)",
		"Suppress all log output":                              "すべてのログ出力を抑制します",
		"Render a scene file to a PNG image":                   "シーンファイルを PNG 画像にレンダリングします",
		"Scene file (JSON or YAML)":                            "シーンファイル (JSON または YAML)",
		"Output PNG file path":                                 "出力する PNG ファイルのパス",
		"Print a base64 data URI instead of writing a file":    "ファイルを書き込む代わりに base64 データ URI を出力します",
		"Run the poster generation HTTP API":                   "ポスター生成 HTTP API を起動します",
		"Port to listen on":                                    "待ち受けるポート番号",
	})
}
