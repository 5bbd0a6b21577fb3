package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"hotel-folio/cmd/bootstrap"
	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/pkg/config"
	"hotel-folio/internal/pkg/errs"

	"github.com/google/uuid"
)

// issuetoken mints a bearer token for a desk operator using the server's signing secret.
//
//	JWT_SECRET=... PORT=8080 go run ./cmd/issuetoken -name "Asha" -role front_desk
func main() {
	op, err := parseOperator(os.Args[1:], os.Stderr)
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := issue(cfg, op, os.Stdout); err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}
}

// parseOperator reads -name, -role and -id into the operator the token is issued to.
func parseOperator(args []string, usage io.Writer) (operator.Operator, error) {
	fs := flag.NewFlagSet("issuetoken", flag.ContinueOnError)
	fs.SetOutput(usage)
	name := fs.String("name", "", "operator display name, recorded as the audit actor")
	role := fs.String("role", string(operator.RoleFrontDesk), "front_desk, manager or auditor")
	id := fs.String("id", "", "operator id (random when empty)")
	if err := fs.Parse(args); err != nil {
		return operator.Operator{}, err
	}
	if fs.NArg() > 0 {
		return operator.Operator{}, errs.Newf("unexpected arguments %v", fs.Args())
	}

	opID := uuid.New()
	if *id != "" {
		parsed, err := uuid.Parse(*id)
		if err != nil {
			return operator.Operator{}, errs.Wrap(err, "invalid -id")
		}
		opID = parsed
	}
	r, err := operator.NewRole(*role)
	if err != nil {
		return operator.Operator{}, err
	}
	return operator.New(opID, *name, r)
}

// issue signs a token for op and writes it to out on its own line.
func issue(cfg config.Config, op operator.Operator, out io.Writer) error {
	svc, err := bootstrap.NewJWTService(cfg)
	if err != nil {
		return err
	}
	token, err := svc.GenerateToken(op)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
