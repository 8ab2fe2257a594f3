package main

import (
	"fmt"
	"os"
	"time"

	"pocketgrove-server/internal/infrastructure/storage"
	"pocketgrove-server/internal/save"
)

// saveutil — консольный осмотр базы сохранений без запуска сервера.
func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	dbPath := os.Args[1]
	cmd := os.Args[2]

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		fmt.Printf("Cannot open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	mgr := save.NewManager(store)

	switch cmd {
	case "list":
		saves, err := mgr.All()
		if err != nil {
			fmt.Printf("Cannot list saves: %v\n", err)
			os.Exit(1)
		}
		if len(saves) == 0 {
			fmt.Println("No saves found.")
			return
		}
		for _, g := range saves {
			fmt.Printf("%-12s %-10s play %s  party %d  money %d  saved %s\n",
				g.Variant, g.PlayerName,
				save.FormatPlayTime(g.PlaySeconds),
				len(g.Party), g.Money,
				time.Unix(g.SavedAt, 0).Format(time.RFC3339))
		}
	case "show":
		if len(os.Args) < 4 {
			fmt.Println("Usage: saveutil <db> show <variant>")
			return
		}
		g, err := mgr.Load(os.Args[3])
		if err != nil {
			fmt.Printf("Cannot load save: %v\n", err)
			os.Exit(1)
		}
		if g == nil {
			fmt.Println("Save not found or corrupt.")
			return
		}
		fmt.Printf("Variant:  %s\nPlayer:   %s\nRival:    %s\nMoney:    %d\nMap:      %s\nPlaytime: %s\n",
			g.Variant, g.PlayerName, g.RivalName, g.Money, g.CurrentMap,
			save.FormatPlayTime(g.PlaySeconds))
		for _, p := range g.Party {
			if p == nil {
				continue
			}
			fmt.Printf("  %-12s lv.%-3d hp %d/%d\n",
				p.DisplayName(), p.Level, p.CurrentHP, p.Stats.HP)
		}
	case "delete":
		if len(os.Args) < 4 {
			fmt.Println("Usage: saveutil <db> delete <variant>")
			return
		}
		if err := mgr.Delete(os.Args[3]); err != nil {
			fmt.Printf("Cannot delete save: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Deleted.")
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Save Utility - осмотр базы сохранений
Usage: saveutil <db_path> <command>
Commands:
  list              - список всех сохранений
  show <variant>    - подробности одного сохранения
  delete <variant>  - удалить сохранение`)
}
