package apperrors

import "errors"

// 错误码
const (
	ErrCodeNoMatchingShape = 1001 + iota
	ErrCodeInvalidPlay
	ErrCodeTypeMismatch
	ErrCodeCardsNotInHand
	ErrCodeMustPlay
	ErrCodeInvalidSeat
	ErrCodeBadState
	ErrCodeTableNotFound
)

// GameError 游戏错误，按指针比较，配合 errors.Is 使用
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Retryable 玩家重新选牌即可恢复的错误
func (e *GameError) Retryable() bool {
	return e.Code != ErrCodeTypeMismatch
}

// 预定义错误
var (
	ErrNoMatchingShape = &GameError{Code: ErrCodeNoMatchingShape, Message: "无效的牌型"}
	ErrInvalidPlay     = &GameError{Code: ErrCodeInvalidPlay, Message: "您的牌大不过上家"}
	ErrTypeMismatch    = &GameError{Code: ErrCodeTypeMismatch, Message: "牌型不同，无法比较"}
	ErrCardsNotInHand  = &GameError{Code: ErrCodeCardsNotInHand, Message: "手牌中没有这些牌"}
	ErrMustPlay        = &GameError{Code: ErrCodeMustPlay, Message: "您必须出牌"}
	ErrInvalidSeat     = &GameError{Code: ErrCodeInvalidSeat, Message: "无效的座位"}
	ErrBadState        = &GameError{Code: ErrCodeBadState, Message: "当前状态不允许该操作"}
	ErrTableNotFound   = &GameError{Code: ErrCodeTableNotFound, Message: "牌桌不存在"}
)

// IsRetryable 判断错误链中的 GameError 是否可重试，非 GameError 返回 false
func IsRetryable(err error) bool {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Retryable()
	}
	return false
}
