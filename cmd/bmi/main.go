package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/AnjanaVP231/BMI-Calculator/internal/domain"
	"github.com/AnjanaVP231/BMI-Calculator/internal/ports"
	"github.com/AnjanaVP231/BMI-Calculator/pkg/pb"
	"github.com/AnjanaVP231/BMI-Calculator/pkg/tlsconfig"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	raw        domain.RawMeasurement
	addr       string
	tls        tlsconfig.Files
	serverName string
	timeout    time.Duration
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("bmi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.raw.Weight, "weight", "", "weight in kilograms")
	fs.StringVar(&o.raw.Height, "height", "", "height in centimeters")
	fs.StringVar(&o.raw.Age, "age", "", "age in whole years")
	fs.StringVar(&o.addr, "addr", "", "BMI server address; evaluates locally when empty")
	fs.StringVar(&o.tls.Cert, "tls-cert", "", "client certificate for mTLS")
	fs.StringVar(&o.tls.Key, "tls-key", "", "client private key for mTLS")
	fs.StringVar(&o.tls.CA, "tls-ca", "", "CA certificate used to verify the server")
	fs.StringVar(&o.serverName, "server-name", "", "expected server certificate name")
	fs.DurationVar(&o.timeout, "timeout", 5*time.Second, "remote call timeout")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return exitInvalid
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if o.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	if o.addr == "" {
		return runLocal(ctx, o, stdout, stderr)
	}
	return runRemote(ctx, o, stdout, stderr)
}

func runLocal(ctx context.Context, o *options, stdout, stderr io.Writer) int {
	result, err := ports.NewAssessor().Assess(ctx, o.raw)

	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fmt.Fprintf(stderr, "%s: %s\n", fe.Field, fe.Message)
		}
		return exitInvalid
	}
	if err != nil {
		log.Error().Err(err).Msg("evaluation failed")
		return exitFailure
	}

	fmt.Fprint(stdout, result.Summary())
	return exitOK
}

func runRemote(ctx context.Context, o *options, stdout, stderr io.Writer) int {
	creds := insecure.NewCredentials()
	if o.tls.Enabled() {
		tlsCfg, err := tlsconfig.LoadClientTLS(o.tls, o.serverName)
		if err != nil {
			log.Error().Err(err).Msg("failed to load TLS config")
			return exitFailure
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(o.addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		log.Error().Err(err).Str("addr", o.addr).Msg("failed to create client")
		return exitFailure
	}
	defer conn.Close()

	req := &pb.MeasurementRequest{Weight: o.raw.Weight, Height: o.raw.Height, Age: o.raw.Age}
	out, err := pb.NewBMIServiceClient(conn).Evaluate(ctx, req.ToStruct())
	if status.Code(err) == codes.InvalidArgument {
		for _, v := range pb.FieldViolationsFromError(err) {
			fmt.Fprintf(stderr, "%s: %s\n", v.Field, v.Message)
		}
		return exitInvalid
	}
	if err != nil {
		log.Error().Err(err).Str("addr", o.addr).Msg("evaluate failed")
		return exitFailure
	}

	resp := pb.EvaluateResponseFromStruct(out)
	log.Debug().Str("evaluation_id", resp.EvaluationID).Msg("remote evaluation")
	printResponse(stdout, resp)
	return exitOK
}

func printResponse(w io.Writer, r *pb.EvaluateResponse) {
	fmt.Fprintf(w, "BMI:          %.2f\n", r.BMI)
	fmt.Fprintf(w, "Category:     %s\n", r.Category)
	fmt.Fprintf(w, "Age group:    %s\n", domain.AgeGroup(r.AgeGroup).Label())
	fmt.Fprintf(w, "Healthy:      %.1f - %.1f kg\n", r.HealthyMinKg, r.HealthyMaxKg)
	fmt.Fprintf(w, "Advice:       %s\n", r.Advice)
	if r.Disclaimer != "" {
		fmt.Fprintf(w, "Note:         %s\n", r.Disclaimer)
	}
}
