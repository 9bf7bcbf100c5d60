package repository

import "errors"

// ErrDataSourceUnavailable データソースへの接続断を表すエラー。
// 「0件ヒット」は各リポジトリが空の結果で表現するため、
// このエラーが返るのは接続・問い合わせ自体の失敗に限られる。
var ErrDataSourceUnavailable = errors.New("データソースに接続できません")
