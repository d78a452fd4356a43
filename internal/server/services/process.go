package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/gophdemo/internal/common"
	"github.com/dmitrijs2005/gophdemo/internal/server/models"
)

const (
	msgCalculated = "Doubled input value %s."
	msgReversed   = "Reversed the input value."
	msgEchoed     = "Returning the data unchanged."
)

// Bounds on calculate input. Larger exponents expand into huge digit strings.
const (
	maxCalcDigits   = 64
	maxCalcExponent = 64
)

var two = decimal.NewFromInt(2)

// Processor implements the toy data transforms behind /api/process-data.
// It holds no state.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Process dispatches on the action string. Unknown actions echo. Input that a
// transform cannot handle yields an error wrapping common.ErrorValidation.
func (p *Processor) Process(action string, data json.RawMessage) (*models.ProcessResult, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = json.RawMessage("null")
	}

	switch models.ParseAction(action) {
	case models.ActionCalculate:
		return p.calculate(data)
	case models.ActionReverse:
		return p.reverse(data)
	default:
		return &models.ProcessResult{Input: data, Result: data, Message: msgEchoed}, nil
	}
}

func (p *Processor) calculate(data json.RawMessage) (*models.ProcessResult, error) {
	n, err := toDecimal(data)
	if err != nil {
		return nil, err
	}

	result := json.RawMessage(n.Mul(two).String())
	return &models.ProcessResult{
		Input:   data,
		Result:  result,
		Message: fmt.Sprintf(msgCalculated, n.String()),
	}, nil
}

func (p *Processor) reverse(data json.RawMessage) (*models.ProcessResult, error) {
	s, err := toText(data)
	if err != nil {
		return nil, err
	}

	result, err := json.Marshal(reverseRunes(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return &models.ProcessResult{Input: data, Result: result, Message: msgReversed}, nil
}

// toDecimal accepts a JSON number or a JSON string holding a decimal number.
func toDecimal(data json.RawMessage) (decimal.Decimal, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	var text string
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case string:
		text = strings.TrimSpace(t)
	default:
		return decimal.Zero, fmt.Errorf("%w: calculate needs a number", common.ErrorValidation)
	}

	if len(text) > maxCalcDigits+maxCalcExponent {
		return decimal.Zero, fmt.Errorf("%w: number is too long", common.ErrorValidation)
	}

	n, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", common.ErrorValidation, text)
	}

	if exp := n.Exponent(); exp > maxCalcExponent || exp < -maxCalcExponent || n.NumDigits() > maxCalcDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", common.ErrorValidation, text)
	}
	return n, nil
}

// toText returns the string form of a scalar: a string's own value, or the
// JSON literal of a number or bool.
func toText(data json.RawMessage) (string, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: reverse needs a string, number or bool", common.ErrorValidation)
	}
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
