package voucher

import (
	"crypto/rand"
	"io"
	"regexp"
	"strings"

	"voucher-ledger/internal/pkg/errs"
)

const (
	CodePrefix    = "VF-"
	codeBodyLen   = 8
	codeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	alphabetLen   = byte(len(codeAlphabet))
	rejectionMark = 256 - 256%int(alphabetLen)
)

var codePattern = regexp.MustCompile(`^VF-[A-Z0-9]{8}$`)

// Code is the human-presentable voucher token, e.g. VF-7K2Q9XMB.
type Code string

func (c Code) String() string { return string(c) }

// IsWellFormed reports whether c has the VF- prefix followed by eight
// upper-case alphanumerics.
func (c Code) IsWellFormed() bool {
	return codePattern.MatchString(string(c))
}

// NormalizeCode trims and upper-cases user input so lookups are case-insensitive.
func NormalizeCode(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// CodeGenerator yields candidate codes. Uniqueness is enforced by storage,
// not by the generator.
type CodeGenerator interface {
	Next() (Code, error)
}

type RandomCodeGenerator struct {
	src io.Reader
}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{src: rand.Reader}
}

// NewCodeGeneratorFrom draws randomness from src instead of crypto/rand.
func NewCodeGeneratorFrom(src io.Reader) *RandomCodeGenerator {
	return &RandomCodeGenerator{src: src}
}

func (g *RandomCodeGenerator) Next() (Code, error) {
	body := make([]byte, 0, codeBodyLen)
	buf := make([]byte, codeBodyLen*2)
	for len(body) < codeBodyLen {
		if _, err := io.ReadFull(g.src, buf); err != nil {
			return "", errs.Wrap(err, "read random bytes")
		}
		for _, b := range buf {
			// rejection sampling keeps every character equally likely
			if int(b) >= rejectionMark {
				continue
			}
			body = append(body, codeAlphabet[b%alphabetLen])
			if len(body) == codeBodyLen {
				break
			}
		}
	}
	return Code(CodePrefix + string(body)), nil
}
