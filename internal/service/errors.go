package service

import "errors"

var (
	ErrNoDocumentData = errors.New("no document data provided")
	ErrNoImages       = errors.New("no images provided")
	ErrNoDocumentIDs  = errors.New("no document ids provided")

	ErrUnknownProduct = errors.New("unknown product id")
)
