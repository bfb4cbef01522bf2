package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoOp переход в текущий этап, пользователю не показывается
	ErrNoOp = errors.New("этап не изменился")
	// ErrItemBusy по записи еще выполняется сохранение
	ErrItemBusy = errors.New("изменение по записи уже сохраняется, повторите позже")
	ErrNotFound = errors.New("запись не найдена")
	// ErrVersionConflict запись изменена параллельно
	ErrVersionConflict = errors.New("запись была изменена другим пользователем")
)

type InvalidStageError struct {
	Stage string
}

func (e InvalidStageError) Error() string {
	return fmt.Sprintf("неизвестный этап: «%s»", e.Stage)
}

// TransitionRefusedError переход запрещен правилами воронки
type TransitionRefusedError struct {
	Message string
}

func (e TransitionRefusedError) Error() string {
	return e.Message
}

func NewTransitionRefused(format string, args ...interface{}) error {
	return TransitionRefusedError{Message: fmt.Sprintf(format, args...)}
}

type LoadError struct {
	Err error
}

func (e LoadError) Error() string {
	return "ошибка загрузки доски: " + e.Err.Error()
}

func (e LoadError) Unwrap() error {
	return e.Err
}

type PersistError struct {
	ItemID string
	Err    error
}

func (e PersistError) Error() string {
	return fmt.Sprintf("ошибка сохранения записи %s: %s", e.ItemID, e.Err.Error())
}

func (e PersistError) Unwrap() error {
	return e.Err
}

func IsInvalidStage(err error) bool {
	var target InvalidStageError
	return errors.As(err, &target)
}

func IsTransitionRefused(err error) bool {
	var target TransitionRefusedError
	return errors.As(err, &target)
}

func IsLoadError(err error) bool {
	var target LoadError
	return errors.As(err, &target)
}

func IsPersistError(err error) bool {
	var target PersistError
	return errors.As(err, &target)
}
