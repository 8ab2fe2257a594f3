package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"pocketgrove-server/internal/domain"
	"pocketgrove-server/pkg/logger"
)

// Имена файлов данных внутри каталога.
const (
	movesFile   = "moves.yaml"
	speciesFile = "species.yaml"
	itemsFile   = "items.yaml"
)

// movesDoc / speciesDoc / itemsDoc — корневые структуры YAML-файлов.
type movesDoc struct {
	Moves []domain.MoveData `yaml:"moves"`
}

type speciesDoc struct {
	Species []domain.SpeciesData `yaml:"species"`
}

type itemsDoc struct {
	Items []domain.ItemData `yaml:"items"`
}

// LoadDir читает три файла данных из каталога и устанавливает их
// в связку реестров. Любой отсутствующий или битый файл — ошибка:
// сервер без полного набора справочных данных не запускается.
func LoadDir(dir string) (*Repository, error) {
	repo := New()

	var moves movesDoc
	if err := readYAML(filepath.Join(dir, movesFile), &moves); err != nil {
		return nil, err
	}
	repo.Moves.Set(moves.Moves)

	var species speciesDoc
	if err := readYAML(filepath.Join(dir, speciesFile), &species); err != nil {
		return nil, err
	}
	if err := validateSpecies(species.Species, repo.Moves); err != nil {
		return nil, err
	}
	repo.Species.Set(species.Species)

	var items itemsDoc
	if err := readYAML(filepath.Join(dir, itemsFile), &items); err != nil {
		return nil, err
	}
	repo.Items.Set(items.Items)

	logger.WithComponent("registry").WithFields(logrus.Fields{
		"moves":   repo.Moves.Len(),
		"species": repo.Species.Len(),
		"items":   repo.Items.Len(),
	}).Info("Game data loaded")

	return repo, nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read data file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse data file %s: %w", path, err)
	}
	return nil
}

// validateSpecies проверяет перекрёстные ссылки learnset -> реестр приёмов.
// Неизвестный приём в learnset — ошибка данных, а не рантайма: фабрика
// такие записи молча пропускает, но загрузчик обязан их поймать.
func validateSpecies(list []domain.SpeciesData, moves *Moves) error {
	for _, sd := range list {
		if len(sd.Types) == 0 || len(sd.Types) > 2 {
			return fmt.Errorf("species %s: must have 1 or 2 types, has %d", sd.ID, len(sd.Types))
		}
		for _, entry := range sd.Learnset {
			if moves.Get(entry.MoveID) == nil {
				return fmt.Errorf("species %s: learnset references unknown move %q", sd.ID, entry.MoveID)
			}
		}
	}
	return nil
}
