package economy

import (
	"errors"
	"fmt"
)

// Kind classifies an economic failure so callers can branch on the
// category without parsing messages.
type Kind string

const (
	KindInsufficientFunds     Kind = "insufficient_funds"
	KindInsufficientInventory Kind = "insufficient_inventory"
	KindNotOwner              Kind = "not_owner"
	KindNotParticipant        Kind = "not_participant"
	KindNotFound              Kind = "not_found"
	KindInvalidState          Kind = "invalid_state"
	KindMaxUpgradeReached     Kind = "max_upgrade_reached"
	KindSelfTrade             Kind = "self_trade"
	KindAlreadyCollectedToday Kind = "already_collected_today"
	KindStoreUnavailable      Kind = "store_unavailable"
)

// Error is the structured failure type for all engine operations.
// Need/Have are populated for funds and inventory shortfalls.
type Error struct {
	Kind   Kind
	Entity string
	ID     int64
	Need   int64
	Have   int64
	msg    string
}

func (e *Error) Error() string { return e.msg }

// KindOf returns the economic kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is lets callers match with errors.Is against a bare-kind template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func ErrInsufficientFunds(have, need int64) *Error {
	return &Error{
		Kind: KindInsufficientFunds,
		Need: need,
		Have: have,
		msg:  fmt.Sprintf("insufficient balance (has %d, needs %d)", have, need),
	}
}

func ErrInsufficientInventory(itemID int64, have, need int64) *Error {
	return &Error{
		Kind:   KindInsufficientInventory,
		Entity: "item",
		ID:     itemID,
		Need:   need,
		Have:   have,
		msg:    fmt.Sprintf("insufficient inventory for item %d (has %d, needs %d)", itemID, have, need),
	}
}

func ErrNotOwner(entity string, id int64) *Error {
	return &Error{
		Kind:   KindNotOwner,
		Entity: entity,
		ID:     id,
		msg:    fmt.Sprintf("%s %d is not owned by the caller", entity, id),
	}
}

func ErrNotParticipant(entity string, id int64) *Error {
	return &Error{
		Kind:   KindNotParticipant,
		Entity: entity,
		ID:     id,
		msg:    fmt.Sprintf("caller is not a participant of %s %d", entity, id),
	}
}

func ErrNotFound(entity string, id int64) *Error {
	return &Error{
		Kind:   KindNotFound,
		Entity: entity,
		ID:     id,
		msg:    fmt.Sprintf("%s %d not found", entity, id),
	}
}

func ErrInvalidState(entity string, id int64, detail string) *Error {
	return &Error{
		Kind:   KindInvalidState,
		Entity: entity,
		ID:     id,
		msg:    fmt.Sprintf("%s %d: %s", entity, id, detail),
	}
}

func ErrMaxUpgradeReached(propertyID int64, tier int) *Error {
	return &Error{
		Kind:   KindMaxUpgradeReached,
		Entity: "property",
		ID:     propertyID,
		Have:   int64(tier),
		msg:    fmt.Sprintf("property %d is already at maximum tier %d", propertyID, tier),
	}
}

func ErrSelfTrade(listingID int64) *Error {
	return &Error{
		Kind:   KindSelfTrade,
		Entity: "listing",
		ID:     listingID,
		msg:    fmt.Sprintf("cannot trade with yourself on listing %d", listingID),
	}
}

func ErrAlreadyCollectedToday(characterID int64) *Error {
	return &Error{
		Kind:   KindAlreadyCollectedToday,
		Entity: "character",
		ID:     characterID,
		msg:    fmt.Sprintf("character %d already collected income today", characterID),
	}
}

func ErrStoreUnavailable(cause error) *Error {
	return &Error{
		Kind: KindStoreUnavailable,
		msg:  fmt.Sprintf("store unavailable: %v", cause),
	}
}
