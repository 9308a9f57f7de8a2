package exitcode

import (
	"errors"
	"fmt"
)

// プロセスの終了コード
type Code int

const (
	OK          Code = 0 // 正常終了
	Failure     Code = 1 // 分類されないエラー（コマンドライン引数の誤りなど）
	InputError  Code = 2 // 入力の誤り（ファイル、カタログ、プロジェクトの記述）
	DomainError Code = 3 // 入力は正しいが計算が成立しない
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case Failure:
		return "failure"
	case InputError:
		return "input error"
	case DomainError:
		return "domain error"
	default:
		return fmt.Sprintf("exit code %d", int(c))
	}
}

// 終了コードを付けたエラー
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches code to err. A nil err stays nil.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Err: err}
}

func Errorf(code Code, format string, args ...interface{}) error {
	return Wrap(code, fmt.Errorf(format, args...))
}

/*
エラーを分類して終了コードを付ける。

	Args:
		err: エラー
		domain: DomainError とするエラーの一覧 (errors.Is で比較)

	Returns:
		domain のいずれかを含むなら DomainError、それ以外は InputError を付けたエラー。
		既に終了コードを持つエラーはそのまま返す。
*/
func Classify(err error, domain ...error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	for _, target := range domain {
		if errors.Is(err, target) {
			return Wrap(DomainError, err)
		}
	}
	return Wrap(InputError, err)
}

// Of returns the exit code carried by err, OK for nil and Failure otherwise.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Failure
}
