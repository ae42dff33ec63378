package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"

	formdoc "github.com/goliatone/go-formdoc"
	"github.com/goliatone/go-formdoc/pkg/orchestrator"
)

func main() {
	source := flag.String("source", "", "form payload path (JSON or YAML)")
	orderPath := flag.String("order", "", "work order metadata path (JSON)")
	regulationsPath := flag.String("regulations", "", "regulation catalog path (JSON)")
	lang := flag.String("lang", "en", "display language (en or es)")
	renderer := flag.String("renderer", "pdf", "renderer to use (pdf or html)")
	output := flag.String("output", "", "output file (stdout if empty)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall generation timeout")
	flag.Parse()

	if *source == "" {
		if err := promptMissing(source, lang, renderer); err != nil {
			log.Fatalf("prompt: %v", err)
		}
	}

	raw, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("Failed to read payload: %v", err)
	}

	var order formdoc.OrderMetadata
	if *orderPath != "" {
		if err := readJSON(*orderPath, &order); err != nil {
			log.Fatalf("Failed to read order metadata: %v", err)
		}
	}

	var regulations []formdoc.RegulationRecord
	if *regulationsPath != "" {
		if err := readJSON(*regulationsPath, &regulations); err != nil {
			log.Fatalf("Failed to read regulation catalog: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	gen := formdoc.NewOrchestrator()
	result, err := gen.Generate(ctx, orchestrator.Request{
		Raw:         raw,
		Order:       order,
		Regulations: regulations,
		Language:    *lang,
		Renderer:    *renderer,
	})
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
	} else {
		os.Stdout.Write(result)
	}
}

// promptMissing collects required inputs interactively when no -source flag
// was given.
func promptMissing(source, lang, renderer *string) error {
	if err := survey.AskOne(&survey.Input{
		Message: "Form payload path:",
	}, source, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var language string
	if err := survey.AskOne(&survey.Select{
		Message: "Language:",
		Options: []string{"en", "es"},
		Default: *lang,
	}, &language); err != nil {
		return err
	}
	*lang = language

	var target string
	if err := survey.AskOne(&survey.Select{
		Message: "Renderer:",
		Options: []string{"pdf", "html"},
		Default: *renderer,
	}, &target); err != nil {
		return err
	}
	*renderer = target
	return nil
}

func readJSON(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
