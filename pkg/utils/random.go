package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GeneratePokemonUID создает уникальный идентификатор существа.
// Временная часть делает ID сортируемыми по моменту создания,
// случайный хвост исключает коллизии существ, созданных подряд.
func GeneratePokemonUID() string {
	return fmt.Sprintf("pkm_%d_%s", time.Now().UnixMilli(), GenerateID())
}
