package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"ismis-scheduler/internal/csvio"
	"ismis-scheduler/internal/model"
	"ismis-scheduler/internal/store"
)

var (
	validPolicies = []string{"compatible", "exclude"}
	policies      = map[string]model.UnscheduledPolicy{
		"compatible": model.UnscheduledCompatible,
		"exclude":    model.UnscheduledExclude,
	}
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the course dataset JSON file")
	coursesPtr := flag.String("courses", "", "Comma-separated base course codes to schedule")
	maxPtr := flag.Int("max", model.DefaultMaxCombinations, "Maximum number of combinations to generate")
	policyPtr := flag.String("policy", "compatible", `How to treat sections without a parseable meeting time. Allowed values are:
- "compatible" (they conflict with nothing and appear in combinations, the default) and
- "exclude" (they are dropped from the candidate lists)`)
	outPtr := flag.String("out", "", "Path to a CSV file for the combinations; if empty, a summary is printed to the Standard Output")
	flag.Parse()
	policy := strings.ToLower(*policyPtr)

	// Validate arguments
	if *filePtr == "" {
		log.Fatal("a dataset file must be specified")
	} else if *coursesPtr == "" {
		log.Fatal("at least one course code must be specified")
	} else if !slices.Contains(validPolicies, policy) {
		log.Fatalf("%v is not a valid policy", policy)
	}

	requested := lo.FilterMap(strings.Split(*coursesPtr, ","), func(code string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(code)
		return trimmed, trimmed != ""
	})

	// Load dataset
	datasets, err := store.New(filepath.Dir(*filePtr))
	if err != nil {
		log.Fatalf("cannot open dataset directory: %v", err)
	}
	courses, _, err := datasets.Load(filepath.Base(*filePtr))
	if err != nil {
		log.Fatalf("cannot load dataset: %v", err)
	}

	// Generate combinations
	generator := model.NewGenerator(policies[policy])
	result, err := generator.Generate(courses, requested, *maxPtr)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	if *outPtr != "" {
		if err := csvio.ExportCombinations(result.Combinations, *outPtr); err != nil {
			log.Fatalf("cannot export combinations: %v", err)
		}
	} else {
		printCombinations(result)
	}

	fmt.Printf("Combinations: %v\n", len(result.Combinations))
	fmt.Printf("Elapsed: %v\n", result.Elapsed)
	if result.Truncated {
		fmt.Println("Search stopped at the combination cap; more schedules may exist.")
	}
}

func printCombinations(result model.GenerationResult) {
	for i, combination := range result.Combinations {
		fmt.Printf("[%d] %v\n", i+1, combination.Status)
		for _, course := range combination.Courses {
			fmt.Printf("    %-28s | %-26s | %-8s | %v\n",
				course.Code, course.Schedule, course.Room, course.Enrolled)
		}
		if len(combination.FullCourses) > 0 {
			fmt.Printf("    full or dissolved: %v\n", strings.Join(combination.FullCourses, ", "))
		}
	}
}
