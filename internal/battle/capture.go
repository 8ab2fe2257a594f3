package battle

import (
	"math"

	"github.com/sirupsen/logrus"

	"pocketgrove-server/internal/domain"
	"pocketgrove-server/pkg/logger"
)

// CatchResult — исход попытки поимки.
type CatchResult struct {
	Caught bool `json:"caught"`
	// Probability — вычисленная вероятность в [0, 1].
	Probability float64 `json:"probability"`
	// Shakes — число качаний шара для анимации клиента (0..3;
	// при поимке всегда 3).
	Shakes int `json:"shakes"`
}

// CatchProbability считает вероятность поимки по стандартной формуле:
//
//	a = (3*maxHP - 2*curHP) * catchRate * ball / (3*maxHP) * statusBonus
//	p = min(a, 255) / 255
//
// Вероятность монотонно растёт при падении доли HP цели и при росте
// множителя шара. Результат зажат в [0, 1].
func CatchProbability(target *domain.Pokemon, catchRate int, ballMultiplier float64) float64 {
	maxHP := target.Stats.HP
	if maxHP < 1 {
		maxHP = 1
	}
	curHP := target.CurrentHP
	if curHP < 0 {
		curHP = 0
	}
	if ballMultiplier < 0 {
		ballMultiplier = 0
	}

	a := float64(3*maxHP-2*curHP) * float64(catchRate) * ballMultiplier / float64(3*maxHP)
	a *= target.Status.CatchBonus()

	if a > 255 {
		a = 255
	}
	p := a / 255
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// AttemptCatch разыгрывает попытку поимки активного дикого существа.
// Граничные значения точны: вероятность 0 никогда не даёт успеха,
// вероятность 1 никогда не даёт провала (контракт rng.Chance).
func (e *Engine) AttemptCatch(target *domain.Pokemon, ballMultiplier float64) CatchResult {
	sd := e.speciesOf(target)
	catchRate := 0
	if sd != nil {
		catchRate = sd.CatchRate
	}

	p := CatchProbability(target, catchRate, ballMultiplier)
	caught := e.Rng.Chance(p)

	shakes := 3
	if !caught {
		// Число качаний пропорционально вероятности — чисто
		// анимационная подсказка клиенту.
		shakes = int(math.Floor(p * 3))
	}

	logger.WithComponent("battle").WithFields(logrus.Fields{
		"target":      target.UID,
		"probability": p,
		"caught":      caught,
	}).Debug("Catch attempted")

	return CatchResult{Caught: caught, Probability: p, Shakes: shakes}
}
