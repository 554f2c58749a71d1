// Package vectors loads and runs SHA-256 known-answer vectors.
package vectors

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shaengine/internal/hash"
)

const (
	// FileVersion is the vector file schema version.
	FileVersion = 1
	// MaxVectorBytes bounds the message length a vector may describe.
	MaxVectorBytes = 1 << 30
)

//go:embed vectors.yaml
var defaultFile []byte

// ErrInvalidVector reports a vector that cannot be run.
var ErrInvalidVector = errors.New("invalid vector")

// File is the on-disk vector set.
type File struct {
	Version int      `yaml:"version"`
	Vectors []Vector `yaml:"vectors"`
}

// Vector is one message with its expected digest. The message is Input or,
// when set, the bytes of InputHex, repeated Repeat times (once when zero).
// A positive Chunk feeds each repetition to the engine in pieces of that size.
type Vector struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input,omitempty"`
	InputHex string `yaml:"input_hex,omitempty"`
	Repeat   int    `yaml:"repeat,omitempty"`
	Chunk    int    `yaml:"chunk,omitempty"`
	Digest   string `yaml:"digest"`
}

// Result is the outcome of running one vector.
type Result struct {
	Name string
	Want hash.Digest
	Got  hash.Digest
}

// OK reports whether the computed digest matched.
func (r Result) OK() bool { return r.Want == r.Got }

// Default returns the built-in vector set.
func Default() []Vector {
	vs, err := Parse(defaultFile)
	if err != nil {
		panic(fmt.Sprintf("vectors: built-in set: %v", err))
	}
	return vs
}

// Load reads and validates a vector file.
func Load(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vector file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates vector file contents.
func Parse(data []byte) ([]Vector, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode vector file: %w", err)
	}
	if file.Version != FileVersion {
		return nil, fmt.Errorf("unsupported vector file version %d", file.Version)
	}
	for i, v := range file.Vectors {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
	}
	return file.Vectors, nil
}

// Validate checks that the vector is runnable.
func (v Vector) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("missing name: %w", ErrInvalidVector)
	}
	if v.Input != "" && v.InputHex != "" {
		return fmt.Errorf("%s: input and input_hex are exclusive: %w", v.Name, ErrInvalidVector)
	}
	if v.Repeat < 0 || v.Chunk < 0 {
		return fmt.Errorf("%s: repeat and chunk must not be negative: %w", v.Name, ErrInvalidVector)
	}
	unit, err := v.unit()
	if err != nil {
		return err
	}
	if len(unit) > 0 && v.count() > MaxVectorBytes/len(unit) {
		return fmt.Errorf("%s: message exceeds %d bytes: %w", v.Name, MaxVectorBytes, ErrInvalidVector)
	}
	if _, err := hash.ParseHex(v.Digest); err != nil {
		return fmt.Errorf("%s: digest: %v: %w", v.Name, err, ErrInvalidVector)
	}
	return nil
}

func (v Vector) unit() ([]byte, error) {
	if v.InputHex == "" {
		return []byte(v.Input), nil
	}
	unit, err := hex.DecodeString(v.InputHex)
	if err != nil {
		return nil, fmt.Errorf("%s: input_hex: %v: %w", v.Name, err, ErrInvalidVector)
	}
	return unit, nil
}

func (v Vector) count() int {
	if v.Repeat == 0 {
		return 1
	}
	return v.Repeat
}

// Message returns the full input bytes of the vector.
func (v Vector) Message() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	unit, err := v.unit()
	if err != nil {
		return nil, err
	}
	return bytes.Repeat(unit, v.count()), nil
}

// Run computes the digest of v, feeding the input unit Repeat times without
// materializing the whole message.
func (v Vector) Run() (Result, error) {
	if err := v.Validate(); err != nil {
		return Result{}, err
	}
	want, err := hash.ParseHex(v.Digest)
	if err != nil {
		return Result{}, fmt.Errorf("%s: digest: %v: %w", v.Name, err, ErrInvalidVector)
	}
	unit, err := v.unit()
	if err != nil {
		return Result{}, err
	}

	e := hash.New()
	for i := 0; i < v.count(); i++ {
		if err := feed(e, unit, v.Chunk); err != nil {
			return Result{}, fmt.Errorf("%s: %w", v.Name, err)
		}
	}
	return Result{Name: v.Name, Want: want, Got: e.Digest()}, nil
}

// RunAll runs every vector in order and stops at the first invalid one.
func RunAll(vs []Vector) ([]Result, error) {
	results := make([]Result, 0, len(vs))
	for _, v := range vs {
		r, err := v.Run()
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Compute hashes msg, feeding it in chunk-sized updates when chunk > 0.
func Compute(msg []byte, chunk int) (hash.Digest, error) {
	e := hash.New()
	if err := feed(e, msg, chunk); err != nil {
		return hash.Digest{}, err
	}
	return e.Digest(), nil
}

func feed(e *hash.Engine, msg []byte, chunk int) error {
	if chunk <= 0 {
		chunk = len(msg)
	}
	for len(msg) > 0 {
		n := min(chunk, len(msg))
		if err := e.Update(msg[:n]); err != nil {
			return err
		}
		msg = msg[n:]
	}
	return nil
}
