package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"osg-reconciler/internal/config"
	"osg-reconciler/internal/gateway"
	"osg-reconciler/internal/usecase"
)

func main() {
	// Define command-line flags
	osgFile := flag.String("osg", "", "Path to the OSG warranty registration sheet, .xlsx or .csv (required)")
	productFile := flag.String("product", "", "Path to the product purchase history sheet, .xlsx or .csv (required)")
	outFile := flag.String("out", "OSG_Updated.xlsx", "Path of the reconciled workbook to write")
	storeFile := flag.String("stores", "", "Optional store / RBM master sheet")
	printSummary := flag.Bool("summary", false, "Also print the run summary as JSON")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Validate required flags
	if *osgFile == "" || *productFile == "" {
		fmt.Println("Error: flags -osg and -product are required.")
		flag.Usage()
		os.Exit(1)
	}

	logger := config.NewLogger(*logLevel, "text", os.Stderr)

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repository (the outermost layer)
	sheetRepo := gateway.NewSheetRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	var storeRepo usecase.StoreRepository
	if *storeFile != "" {
		storeRepo = sheetRepo
	}
	reconciliationUseCase := usecase.NewReconciliationUseCase(sheetRepo, storeRepo, *storeFile, logger)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(context.Background(), *osgFile, *productFile)
	if err != nil {
		log.Fatalf("Reconciliation failed: %v", err)
	}

	// --- Present the Output ---
	if err := gateway.NewWorkbookWriter().WriteFile(*outFile, report); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}

	if *printSummary {
		output, err := json.MarshalIndent(report.Summary, "", "  ")
		if err != nil {
			log.Fatalf("Failed to generate JSON summary: %v", err)
		}
		fmt.Println(string(output))
		return
	}
	fmt.Printf("Wrote %d rows to %s\n", len(report.Rows), *outFile)
}
