package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToNumber converte o valor textual retornado pela API em float64.
// Valores ausentes, não numéricos ou não finitos viram 0.
func ToNumber(v string) float64 {
	if v == "" {
		return 0
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// SafeDivide retorna a/b quando b > 0 e nil caso contrário.
// Divisão por zero ou denominador negativo é resultado definido, nunca erro.
func SafeDivide(a, b float64) *float64 {
	if b <= 0 {
		return nil
	}

	result := a / b
	return &result
}

// ToPercent retorna (a/b)*100, propagando o nil de SafeDivide.
func ToPercent(a, b float64) *float64 {
	ratio := SafeDivide(a, b)
	if ratio == nil {
		return nil
	}

	pct := *ratio * 100
	return &pct
}

// Float64Ptr é um helper para montar campos opcionais de resposta.
func Float64Ptr(f float64) *float64 {
	return &f
}
