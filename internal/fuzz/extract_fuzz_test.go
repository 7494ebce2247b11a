package fuzztests

import (
	"context"
	"testing"
	"time"

	"wgslspec/internal/diag"
	"wgslspec/internal/extract"
	"wgslspec/internal/htmldoc"
)

// extractTimeout bounds one run; exceeding it means a walk does not terminate.
const extractTimeout = 5 * time.Second

func FuzzExtractDocument(f *testing.F) {
	addDocumentSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		doc, err := htmldoc.ParseBytes(input)
		if err != nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
		defer cancel()

		done := make(chan struct{})
		var (
			res    *extract.Result
			runErr error
		)
		go func() {
			defer close(done)
			opts := extract.DefaultOptions()
			opts.Reporter = diag.BagReporter{Bag: diag.NewBag(128)}
			res, runErr = extract.Run(context.Background(), doc, opts)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("extraction did not finish within %v (input size: %d bytes)", extractTimeout, len(input))
		}

		if runErr != nil {
			if _, ok := diag.AsStructural(runErr); !ok {
				t.Fatalf("unexpected error kind: %v", runErr)
			}
			if res != nil {
				t.Fatal("a failed run must not return catalogs")
			}
			return
		}
		for name, fn := range res.Functions.Functions {
			if name == "S" || name == "T" {
				t.Fatalf("placeholder %q left in catalog", name)
			}
			for _, ov := range fn.Overloads {
				if ov.Parameterization.Typevars == nil {
					t.Fatalf("%s: nil typevars", name)
				}
			}
		}
	})
}

func FuzzJoinWordsIdempotent(f *testing.F) {
	addSignatureSeeds(f)
	f.Add("a , b . c ;")
	f.Fuzz(func(t *testing.T, input string) {
		once := htmldoc.JoinWords([]string{input})
		twice := htmldoc.JoinWords([]string{once})
		if once != twice {
			t.Fatalf("JoinWords not idempotent: %q -> %q -> %q", input, once, twice)
		}
	})
}
