// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 描画処理で発生するエラーを型で区別し、範囲外の値などは警告として通知します。
package errors

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("censusviz-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、ClippedRangeWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	描画に関する警告型
//
// ===========================================================================

// ClippedRangeWarning は固定された軸範囲の外にある値が切り取られた場合に発生する警告です。
type ClippedRangeWarning struct {
	Panel string
	Axis  string
	Min   float64
	Max   float64
	Value float64
}

func (w *ClippedRangeWarning) Error() string {
	return fmt.Sprintf("%s: value %g lies outside the fixed %s range [%g, %g] and is clipped",
		w.Panel, w.Value, w.Axis, w.Min, w.Max)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ClippedRangeWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("panel", w.Panel).
		Str("axis", w.Axis).
		Float64("min", w.Min).
		Float64("max", w.Max).
		Float64("value", w.Value).
		Str("type", "ClippedRangeWarning")
}

// NewClippedRangeWarning は新しいClippedRangeWarningを作成します。
func NewClippedRangeWarning(panel, axis string, min, max, value float64) *ClippedRangeWarning {
	return &ClippedRangeWarning{Panel: panel, Axis: axis, Min: min, Max: max, Value: value}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// MissingColumnError はデータセットに必要な列が存在しない場合のエラーです。
type MissingColumnError struct {
	Op        string
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("censusviz: %s: column %q not found (available: %s)",
		e.Op, e.Column, strings.Join(e.Available, ", "))
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingColumnError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Strs("available", e.Available).
		Str("type", "MissingColumnError")
}

// NewMissingColumnError は新しいMissingColumnErrorを作成し、スタックトレースを付与します。
func NewMissingColumnError(op, column string, available []string) error {
	err := &MissingColumnError{Op: op, Column: column, Available: available}
	return errors.WithStack(err)
}

// MissingMetricError は結果テーブルのレコードに必要な指標キーが無い場合のエラーです。
type MissingMetricError struct {
	Learner string
	Index   int // トレーニングサイズのバケット番号
	Metric  string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("censusviz: evaluate: learner %q record %d has no metric %q", e.Learner, e.Index, e.Metric)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingMetricError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("learner", e.Learner).
		Int("index", e.Index).
		Str("metric", e.Metric).
		Str("type", "MissingMetricError")
}

// NewMissingMetricError は新しいMissingMetricErrorを作成し、スタックトレースを付与します。
func NewMissingMetricError(learner string, index int, metric string) error {
	err := &MissingMetricError{Learner: learner, Index: index, Metric: metric}
	return errors.WithStack(err)
}

// TooManySeriesError は色の割り当てに必要な色数がパレットを超えた場合のエラーです。
type TooManySeriesError struct {
	Op        string
	Series    int
	Available int
}

func (e *TooManySeriesError) Error() string {
	return fmt.Sprintf("censusviz: %s: too many series: %d series but only %d colors available",
		e.Op, e.Series, e.Available)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *TooManySeriesError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("series", e.Series).
		Int("available", e.Available).
		Str("type", "TooManySeriesError")
}

// NewTooManySeriesError は新しいTooManySeriesErrorを作成し、スタックトレースを付与します。
func NewTooManySeriesError(op string, series, available int) error {
	err := &TooManySeriesError{Op: op, Series: series, Available: available}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("censusviz: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// `ValueError`よりも具体的なバリデーションロジックの失敗を示します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("censusviz: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、空の結果テーブルを渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("censusviz: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NumericalInstabilityError は入力にNaNやInfが含まれている場合のエラーです。
type NumericalInstabilityError struct {
	Operation string    // 発生した操作（例: "feature_plot"）
	Values    []float64 // 問題のある値
}

func (e *NumericalInstabilityError) Error() string {
	var b strings.Builder
	for i, v := range e.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		if i >= 5 {
			b.WriteString("...")
			break
		}
		fmt.Fprintf(&b, "%.6g", v)
	}
	return fmt.Sprintf("censusviz: non-finite values detected in %s. Values: [%s]", e.Operation, b.String())
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrUnknownFormat はサポートされていない画像形式が指定された場合のエラーです。
	ErrUnknownFormat = New("unknown image format")
)
