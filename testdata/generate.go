package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/parquet-go/parquet-go"
)

type Reading struct {
	Temperature float64 `parquet:"temperature"`
	Pressure    float64 `parquet:"pressure"`
}

func main() {
	if err := os.MkdirAll("test_data", 0o755); err != nil {
		log.Fatal(err)
	}

	for i := 1; i <= 3; i++ {
		readings := make([]Reading, 50)
		for j := range readings {
			readings[j] = Reading{
				Temperature: 20 + rand.Float64()*80,
				Pressure:    1 + rand.Float64()*4,
			}
		}

		path := fmt.Sprintf("test_data/sample_%d.snappy.parquet", i)
		file, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}

		writer := parquet.NewGenericWriter[Reading](file, parquet.Compression(&parquet.Snappy))
		if _, err := writer.Write(readings); err != nil {
			log.Fatal(err)
		}
		if err := writer.Close(); err != nil {
			log.Fatal(err)
		}
		if err := file.Close(); err != nil {
			log.Fatal(err)
		}

		log.Printf("Saved: %s", path)
	}
}
