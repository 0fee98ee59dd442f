package vpack

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/vpack/pkg/xor"
)

var (
	// ErrFormat is returned when a container doesn't start with the magic marker, or its metadata block is truncated or malformed.
	ErrFormat = errors.New("invalid VPACK+ file format")
	// ErrNotEncrypted is returned when the metadata says the payload isn't screened, which needs a different decoder.
	ErrNotEncrypted = errors.New("this file is not encrypted, use the normal .vpack decoder")
	// ErrIntegrity is returned when the restored payload length doesn't match the recorded size.
	ErrIntegrity = errors.New("incorrect password or corrupted file")
	// ErrEmptyPassword is returned before any work is done if the password is empty.
	ErrEmptyPassword = fmt.Errorf("%w: password must not be empty", xor.ErrEmptyKey)
)
