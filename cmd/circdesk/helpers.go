// Shared helpers for circdesk CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/bookfold/circdesk/pkg/sqlite"
	"github.com/bookfold/circdesk/pkg/types"
)

// openStore resolves the data directory, opens the SQLite store, and
// ensures the schema exists. The caller must defer store.Close().
func openStore() (types.Store, types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:         types.BackendSQLite,
		DataDir:         dataDir,
		MaxLoansPerUser: configMaxLoans,
	}

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		return nil, types.Config{}, fmt.Errorf("open store: %w", err)
	}
	if err := store.CreateSchema(); err != nil {
		store.Close()
		return nil, types.Config{}, fmt.Errorf("create schema: %w", err)
	}

	return store, cfg, nil
}

// fail prints the error and exits: business-rule and input failures are
// user errors, everything else is a system error.
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", context, err)
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrConstraint),
		errors.Is(err, types.ErrLoanLimit),
		errors.Is(err, types.ErrUnavailable):
		os.Exit(exitUserError)
	default:
		os.Exit(exitSysError)
	}
}

// parseID parses a positional identifier argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// printEntity writes the entity as indented JSON when --json is set and
// falls back to the given human-readable line otherwise.
func printEntity(entity any, human string) {
	if flagJSON {
		out, err := json.MarshalIndent(entity, "", "  ")
		if err != nil {
			fail("marshal JSON", err)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Println(human)
}
