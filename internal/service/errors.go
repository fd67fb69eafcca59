package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationNoText         = errors.New("entry text must not be empty")
	ErrValidationNoTranslation  = errors.New("entry translation must not be empty")
	ErrValidationUnknownKind    = errors.New("unknown entry kind")
	ErrValidationNoLanguage     = errors.New("word entries require a language")
	ErrValidationNoWordText     = errors.New("no word text provided")
	ErrValidationNoLanguageName = errors.New("no language name provided")
	ErrValidationUnknownIcon    = errors.New("unknown tag icon")
	ErrValidationUnknownSort    = errors.New("unknown sort order")
	ErrValidationUnknownTheme   = errors.New("unknown theme")

	ErrUnknownGame = errors.New("unknown practice game")
)
