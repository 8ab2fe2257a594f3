package rng

import (
	"math/rand"
	"time"
)

// Source — инжектируемый источник случайности.
// Весь вероятностный код ядра (броски IV, выбор природы, шанс поимки,
// разброс урона) получает Source параметром, а не обращается к
// глобальному генератору: тесты передают фиксированный сид и получают
// воспроизводимый результат.
type Source struct {
	r *rand.Rand
}

// New создает источник с заданным сидом.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NewRandom создает источник со случайным сидом (для продакшена).
func NewRandom() *Source {
	return New(time.Now().UnixNano())
}

// Intn возвращает равномерное целое в [0, n).
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// Between возвращает равномерное целое в [min, max] включительно.
func (s *Source) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// Float64 возвращает равномерное число в [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Chance возвращает true с вероятностью p.
// Граничные значения точны: p <= 0 — всегда false, p >= 1 — всегда true.
// Это контракт формулы поимки, см. AttemptCatch.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}
