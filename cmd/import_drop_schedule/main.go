package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"dropradar-backend/database"
	"dropradar-backend/drops"

	"github.com/joho/godotenv"
)

func main() {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	csvPath := flag.String("csv", "", "Path to CSV file containing drop schedule entries")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("--csv is required")
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv file: %v", err)
	}
	defer file.Close()

	entries, err := drops.ParseScheduleCSV(file)
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}

	database.ConnectDB()
	repo := drops.NewPostgresRepository(database.DB)

	count, err := repo.ImportSchedule(context.Background(), entries)
	if err != nil {
		log.Fatalf("import schedule: %v", err)
	}

	fmt.Printf("Imported %d drop schedule entries\n", count)
}
