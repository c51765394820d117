package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	hypercerts "github.com/goliatone/go-hypercerts"
	"github.com/goliatone/go-hypercerts/pkg/metadata"
	"github.com/goliatone/go-hypercerts/pkg/prompt"
	"github.com/goliatone/go-hypercerts/pkg/submission"
)

const defaultEndpoint = "https://api.hypercerts.org/v1/graphql"

func main() {
	mode := flag.String("mode", "fetch", "fetch, validate, or submit")
	endpoint := flag.String("endpoint", envOr("HYPERCERTS_ENDPOINT", defaultEndpoint), "GraphQL endpoint URL")
	boardID := flag.String("board", envOr("HYPERCERTS_BOARD_ID", ""), "hyperboard id to resolve")
	format := flag.String("format", "json", "output format: json or yaml")
	output := flag.String("output", "", "output file (stdout if empty)")
	draftPath := flag.String("draft", "", "draft file to validate (yaml)")
	fanoutLimit := flag.Int("fanout-limit", 0, "max concurrent hypercert queries (0 = unbounded)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	switch *mode {
	case "fetch":
		runFetch(ctx, logger, *endpoint, *boardID, *format, *output, *fanoutLimit)
	case "validate":
		runValidate(*draftPath)
	case "submit":
		runSubmit(ctx)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func runFetch(ctx context.Context, logger *zap.Logger, endpoint, boardID, format, output string, fanoutLimit int) {
	if boardID == "" {
		log.Fatalf("a hyperboard id is required (-board or HYPERCERTS_BOARD_ID)")
	}

	client := hypercerts.New(endpoint, boardID,
		hypercerts.WithLogger(logger),
		hypercerts.WithFanoutLimit(fanoutLimit),
	)

	env := client.FetchHypercerts(ctx)
	if env.Failed() {
		log.Fatalf("failed to fetch hypercerts: %v", env.Err)
	}

	encoded, err := encode(env.Data, format)
	if err != nil {
		log.Fatalf("failed to encode records: %v", err)
	}
	if err := write(encoded, output); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}

func runValidate(draftPath string) {
	if draftPath == "" {
		log.Fatalf("a draft file is required (-draft)")
	}
	raw, err := os.ReadFile(draftPath)
	if err != nil {
		log.Fatalf("failed to read draft: %v", err)
	}

	draft := submission.NewValues()
	if err := yaml.Unmarshal(raw, &draft); err != nil {
		log.Fatalf("failed to decode draft: %v", err)
	}

	if _, issues := hypercerts.ValidateSubmission(draft); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s\n", issue.Path, issue.Message)
		}
		os.Exit(1)
	}
	fmt.Println("draft is valid")
}

func runSubmit(ctx context.Context) {
	driver := prompt.New()

	draft, err := collectDraft(ctx, driver)
	if err != nil {
		log.Fatalf("submission aborted: %v", err)
	}
	if !draft.AcceptTerms || !draft.ConfirmContributorsPermission {
		log.Fatalf("submission requires accepting the terms and confirming contributor permission")
	}

	validated, issues := hypercerts.ValidateSubmission(draft)
	if len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s\n", issue.Path, issue.Message)
		}
		os.Exit(1)
	}

	meta, err := hypercerts.FormatMetadata(validated, metadata.ExtrasFor(validated))
	if err != nil {
		log.Fatalf("failed to format metadata: %v", err)
	}

	encoded, err := encode(meta, "json")
	if err != nil {
		log.Fatalf("failed to encode metadata: %v", err)
	}
	fmt.Println(string(encoded))
}

func encode(value any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(value, "", "  ")
	case "yaml":
		return yaml.Marshal(value)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func write(data []byte, output string) error {
	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Records written to %s\n", output)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
