// SPDX-License-Identifier: MIT

// Package messages turns error chains into short human-readable texts in
// English or Russian, backed by a golang.org/x/text message catalog.
package messages

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/katalvlaran/matpow/codec"
	"github.com/katalvlaran/matpow/internal/config"
	"github.com/katalvlaran/matpow/internal/harness"
	"github.com/katalvlaran/matpow/matrix"
	"github.com/katalvlaran/matpow/numeric"
)

// Supported lists the catalog languages; the first is the fallback.
var Supported = []language.Tag{language.English, language.Russian}

// Catalog keys.
const (
	keyUnknown         = "unknown"
	keyNilMatrix       = "nil-matrix"
	keyInvalidSize     = "invalid-size"
	keyDimension       = "dimension"
	keyModulusMismatch = "modulus-mismatch"
	keyNotSquare       = "not-square"
	keyOutOfRange      = "out-of-range"
	keyAllocation      = "allocation"
	keyOverflow        = "overflow"
	keyUnderflow       = "underflow"
	keyInvalidModulus  = "invalid-modulus"
	keyEmpty           = "empty"
	keyInvalidFormat   = "invalid-format"
	keyCellTooLong     = "cell-too-long"
	keyConversion      = "conversion"
	keyFormat          = "format"
	keyNoCases         = "no-cases"
	keyUnknownOp       = "unknown-op"
	keyOperands        = "operands"
	keyInvalidParams   = "invalid-params"
	keyInvalidConfig   = "invalid-config"
)

// entry binds a sentinel to its catalog key. Order matters: more specific
// sentinels (codec children) precede their parents.
type entry struct {
	target error
	key    string
}

var table = []entry{
	{matrix.ErrNilMatrix, keyNilMatrix},
	{matrix.ErrInvalidSize, keyInvalidSize},
	{matrix.ErrDimensionMismatch, keyDimension},
	{matrix.ErrModulusMismatch, keyModulusMismatch},
	{matrix.ErrNotSquare, keyNotSquare},
	{matrix.ErrOutOfRange, keyOutOfRange},
	{matrix.ErrAllocation, keyAllocation},
	{numeric.ErrOverflow, keyOverflow},
	{numeric.ErrUnderflow, keyUnderflow},
	{numeric.ErrInvalidModulus, keyInvalidModulus},
	{codec.ErrEmpty, keyEmpty},
	{codec.ErrInvalidFormat, keyInvalidFormat},
	{codec.ErrCellTooLong, keyCellTooLong},
	{codec.ErrConversion, keyConversion},
	{codec.ErrFormat, keyFormat},
	{harness.ErrNoCases, keyNoCases},
	{harness.ErrUnknownOp, keyUnknownOp},
	{harness.ErrOperands, keyOperands},
	{harness.ErrInvalidParams, keyInvalidParams},
	{config.ErrInvalidConfig, keyInvalidConfig},
}

var texts = map[string][2]string{ // key → {en, ru}
	keyUnknown:         {"Unknown matrix error", "Неизвестная ошибка"},
	keyNilMatrix:       {"Null matrix argument", "Не задана матрица"},
	keyInvalidSize:     {"Invalid matrix size", "Недопустимый размер матрицы"},
	keyDimension:       {"Matrix dimension error", "Ошибка размерности матрицы"},
	keyModulusMismatch: {"Matrices belong to different fields", "Матрицы заданы над разными полями"},
	keyNotSquare:       {"Matrix is not square", "Матрица не квадратная"},
	keyOutOfRange:      {"Matrix index out of range", "Индекс вне границ матрицы"},
	keyAllocation:      {"Matrix creation error", "Ошибка создания матрицы"},
	keyOverflow:        {"Arithmetic overflow", "Арифметическое переполнение"},
	keyUnderflow:       {"Subtraction result is negative", "Отрицательный результат вычитания"},
	keyInvalidModulus:  {"Invalid field size", "Недопустимый размер поля"},
	keyEmpty:           {"Empty matrix string", "Пустая строка матрицы"},
	keyInvalidFormat:   {"Invalid string format", "Неверный формат строки"},
	keyCellTooLong:     {"String buffer overflow", "Переполнение буфера строки"},
	keyConversion:      {"String conversion error", "Ошибка преобразования строки"},
	keyFormat:          {"String conversion error", "Ошибка преобразования строки"},
	keyNoCases:         {"No test cases were generated", "Не сгенерировано ни одного теста"},
	keyUnknownOp:       {"Unknown operation", "Неизвестная операция"},
	keyOperands:        {"Wrong number of operands", "Неверное число операндов"},
	keyInvalidParams:   {"Invalid test generation parameters", "Неверные параметры генерации тестов"},
	keyInvalidConfig:   {"Invalid configuration", "Некорректная конфигурация"},
}

var cat = build()

func build() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, t := range texts {
		// SetString only fails on malformed message syntax; the table is plain text.
		_ = b.SetString(language.English, key, t[0])
		_ = b.SetString(language.Russian, key, t[1])
	}

	return b
}

// Match maps any tag to the closest supported language by base language.
func Match(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, s := range Supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}

	return Supported[0]
}

// Parse reads a BCP 47 string such as "ru" or "en-US"; invalid input yields English.
func Parse(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}

	return Match(tag)
}

// Key returns the catalog key of the first known sentinel in err's chain.
func Key(err error) string {
	for _, e := range table {
		if errors.Is(err, e.target) {
			return e.key
		}
	}

	return keyUnknown
}

// Text renders err in lang. A nil error renders as the empty string.
func Text(err error, lang language.Tag) string {
	if err == nil {
		return ""
	}
	p := message.NewPrinter(Match(lang), message.Catalog(cat))

	return p.Sprintf(Key(err))
}

// Describer returns Text bound to lang, for injection into the harness.
func Describer(lang language.Tag) func(error) string {
	return func(err error) string { return Text(err, lang) }
}

// Known reports whether err's chain holds a sentinel with its own text.
func Known(err error) bool {
	return err != nil && Key(err) != keyUnknown
}
