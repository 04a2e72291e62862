package handlers

import (
	"encoding/json"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
	"github.com/olveryu/WerewolfGameJudge-sub011/pkg/api"
)

// TypedHandlerFunc - "чистый" хендлер, работающий с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) Outcome

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (LEAVE_MY_SEAT, START_NIGHT)
type EmptyHandlerFunc func(ctx Context) Outcome

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя Unmarshal и Validate.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) Outcome {
		var payload T

		// 1. Распаковка JSON
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err != nil {
				return Reject(domain.ReasonInvalidPayload)
			}
		}

		// 2. Автоматическая валидация, если структура T реализует api.Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Reject(domain.ReasonInvalidPayload)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для намерений без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) Outcome {
		return handler(ctx)
	}
}
