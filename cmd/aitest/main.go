package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/medcoreph/clinic-core/internal/ai"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	client, err := ai.NewClient(ctx, apiKey, os.Getenv("GEMINI_MODEL_ID"))
	if err != nil {
		log.Fatalf("create client: %v", err)
	}
	defer func() { _ = client.Close() }()

	symptoms := "Productive cough for 5 days, low-grade fever at night, mild chest tightness. No known allergies."

	fmt.Println("[1] Symptom analysis...")
	start := time.Now()
	analysis, err := client.AnalyzeSymptoms(ctx, symptoms)
	if err != nil {
		log.Fatalf("analyze symptoms: %v", err)
	}
	fmt.Printf("    done in %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("    Triage: %s\n", analysis.TriageLevel)
	fmt.Printf("    Summary: %s\n", analysis.Summary)
	for _, c := range analysis.Considerations {
		fmt.Printf("    - %s\n", c)
	}
	for _, q := range analysis.FollowUpQuestions {
		fmt.Printf("    ? %s\n", q)
	}

	transcript := "Patient reports coughing for about a week, worse at night. Temperature 37.8. " +
		"Lungs with scattered crackles on the right. Advised chest x-ray, started on amoxicillin, " +
		"follow-up in one week."

	fmt.Println("[2] SOAP draft...")
	start = time.Now()
	draft, err := client.DraftNotes(ctx, transcript)
	if err != nil {
		log.Fatalf("draft notes: %v", err)
	}
	fmt.Printf("    done in %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("    S: %s\n", draft.Subjective)
	fmt.Printf("    O: %s\n", draft.Objective)
	fmt.Printf("    A: %s\n", draft.Assessment)
	fmt.Printf("    P: %s\n", draft.Plan)
}
