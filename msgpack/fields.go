// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package msgpack

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// Message is a nested record that encodes itself canonically
type Message[U any] interface {
	*U
	msgp.Marshaler
	msgp.Unmarshaler
	IsZero() bool
}

func Uint64[T any, V ~uint64](key string, get func(*T) *V) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool { return *get(t) != 0 },
		Append: func(b []byte, t *T) ([]byte, error) {
			return msgp.AppendUint64(b, uint64(*get(t))), nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			v, o, err := msgp.ReadUint64Bytes(b)
			if err != nil {
				return nil, err
			}
			*get(t) = V(v)
			return o, nil
		},
	}
}

func Uint32[T any, V ~uint32](key string, get func(*T) *V) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool { return *get(t) != 0 },
		Append: func(b []byte, t *T) ([]byte, error) {
			return msgp.AppendUint32(b, uint32(*get(t))), nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			v, o, err := msgp.ReadUint32Bytes(b)
			if err != nil {
				return nil, err
			}
			*get(t) = V(v)
			return o, nil
		},
	}
}

func Uint8[T any, V ~uint8](key string, get func(*T) *V) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool { return *get(t) != 0 },
		Append: func(b []byte, t *T) ([]byte, error) {
			return msgp.AppendUint8(b, uint8(*get(t))), nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			v, o, err := msgp.ReadUint8Bytes(b)
			if err != nil {
				return nil, err
			}
			*get(t) = V(v)
			return o, nil
		},
	}
}

func Bool[T any, V ~bool](key string, get func(*T) *V) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool { return bool(*get(t)) },
		Append: func(b []byte, t *T) ([]byte, error) {
			return msgp.AppendBool(b, bool(*get(t))), nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			v, o, err := msgp.ReadBoolBytes(b)
			if err != nil {
				return nil, err
			}
			*get(t) = V(v)
			return o, nil
		},
	}
}

func String[T any, V ~string](key string, get func(*T) *V) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool { return len(*get(t)) > 0 },
		Append: func(b []byte, t *T) ([]byte, error) {
			return msgp.AppendString(b, string(*get(t))), nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			v, o, err := msgp.ReadStringBytes(b)
			if err != nil {
				return nil, err
			}
			*get(t) = V(v)
			return o, nil
		},
	}
}

// Bytes encodes a variable length byte sequence as 'bin'
func Bytes[T any, V ~[]byte](key string, get func(*T) *V) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool { return len(*get(t)) > 0 },
		Append: func(b []byte, t *T) ([]byte, error) {
			return msgp.AppendBytes(b, []byte(*get(t))), nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			v, o, err := msgp.ReadBytesBytes(b, nil)
			if err != nil {
				return nil, err
			}
			*get(t) = V(v)
			return o, nil
		},
	}
}

// Fixed32 encodes a 32-byte value such as a public key or digest as 'bin'.
// The all-zero value is absent.
func Fixed32[T any, V ~[32]byte](key string, get func(*T) *V) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool {
			var zero V
			return *get(t) != zero
		},
		Append: func(b []byte, t *T) ([]byte, error) {
			v := [32]byte(*get(t))
			return msgp.AppendBytes(b, v[:]), nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			v, o, err := ReadFixed32(b)
			if err != nil {
				return nil, err
			}
			*get(t) = V(v)
			return o, nil
		},
	}
}

// ReadFixed32 reads a 'bin' value that must be exactly 32 bytes long
func ReadFixed32(b []byte) ([32]byte, []byte, error) {
	var ret [32]byte
	v, o, err := msgp.ReadBytesZC(b)
	if err != nil {
		return ret, nil, classify(err)
	}
	if len(v) != len(ret) {
		return ret, nil, fmt.Errorf("%w: expected 32 bytes, got %d", ErrMalformed, len(v))
	}
	copy(ret[:], v)
	return ret, o, nil
}

// Object encodes a nested record. It is present when the record has any present fields.
func Object[T any, U any, P Message[U]](key string, get func(*T) *U) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool { return !P(get(t)).IsZero() },
		Append: func(b []byte, t *T) ([]byte, error) {
			return P(get(t)).MarshalMsg(b)
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			return P(get(t)).UnmarshalMsg(b)
		},
	}
}

// BytesList encodes a list of byte sequences. The list is present when any
// element is non-empty, and is then encoded in full, including empty elements.
func BytesList[T any, V ~[]byte](key string, get func(*T) *[]V) Field[T] {
	return list(key, get,
		func(v *V) bool { return len(*v) > 0 },
		func(b []byte, v *V) ([]byte, error) {
			return msgp.AppendBytes(b, []byte(*v)), nil
		},
		func(b []byte, v *V) ([]byte, error) {
			tmp, o, err := msgp.ReadBytesBytes(b, nil)
			if err != nil {
				return nil, err
			}
			*v = V(tmp)
			return o, nil
		},
	)
}

func Uint64List[T any, V ~uint64](key string, get func(*T) *[]V) Field[T] {
	return list(key, get,
		func(v *V) bool { return *v != 0 },
		func(b []byte, v *V) ([]byte, error) {
			return msgp.AppendUint64(b, uint64(*v)), nil
		},
		func(b []byte, v *V) ([]byte, error) {
			tmp, o, err := msgp.ReadUint64Bytes(b)
			if err != nil {
				return nil, err
			}
			*v = V(tmp)
			return o, nil
		},
	)
}

func Fixed32List[T any, V ~[32]byte](key string, get func(*T) *[]V) Field[T] {
	return list(key, get,
		func(v *V) bool {
			var zero V
			return *v != zero
		},
		func(b []byte, v *V) ([]byte, error) {
			tmp := [32]byte(*v)
			return msgp.AppendBytes(b, tmp[:]), nil
		},
		func(b []byte, v *V) ([]byte, error) {
			tmp, o, err := ReadFixed32(b)
			if err != nil {
				return nil, err
			}
			*v = V(tmp)
			return o, nil
		},
	)
}

// ObjectList encodes a list of nested records
func ObjectList[T any, U any, P Message[U]](key string, get func(*T) *[]U) Field[T] {
	return list(key, get,
		func(v *U) bool { return !P(v).IsZero() },
		func(b []byte, v *U) ([]byte, error) {
			return P(v).MarshalMsg(b)
		},
		func(b []byte, v *U) ([]byte, error) {
			return P(v).UnmarshalMsg(b)
		},
	)
}

func list[T any, V any](
	key string,
	get func(*T) *[]V,
	elemPresent func(*V) bool,
	appendElem func([]byte, *V) ([]byte, error),
	readElem func([]byte, *V) ([]byte, error),
) Field[T] {
	return Field[T]{
		Key:     key,
		Present: func(t *T) bool {
			items := *get(t)
			for i := range items {
				if elemPresent(&items[i]) {
					return true
				}
			}
			return false
		},
		Append: func(b []byte, t *T) ([]byte, error) {
			items := *get(t)
			b = msgp.AppendArrayHeader(b, uint32(len(items)))
			var err error
			for i := range items {
				if b, err = appendElem(b, &items[i]); err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
			}
			return b, nil
		},
		Read: func(b []byte, t *T) ([]byte, error) {
			sz, o, err := msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return nil, err
			}
			// Every element takes at least one byte
			if int(sz) > len(o) {
				return nil, msgp.ErrShortBytes
			}
			items := make([]V, sz)
			for i := range items {
				if o, err = readElem(o, &items[i]); err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
			}
			*get(t) = items
			return o, nil
		},
	}
}
