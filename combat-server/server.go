//go:generate protoc -I ../lib/combat --go_out=plugins=grpc:../lib/combat ../lib/combat/combat.proto

package main

import (
	"net"

	"cloud.google.com/go/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/aasmall/combatmagic/lib/combat"
	errors "github.com/aasmall/combatmagic/lib/combat-errors"
	"github.com/aasmall/combatmagic/lib/envreader"
	log "github.com/aasmall/combatmagic/lib/logger"
	"golang.org/x/net/context"
)

type env struct {
	log        *log.Logger
	config     *envConfig
	calculator *combat.Calculator
}

type envConfig struct {
	projectID  string
	logName    string
	serverPort string
	podName    string
	warmDepth  int64
	debug      bool
	local      bool
}

type server struct {
	env *env
}

func newServer(e *env) *server {
	return &server{env: e}
}

func main() {
	configReader := envreader.NewEnvReader()
	config := &envConfig{
		projectID:  configReader.GetEnv("PROJECT_ID"),
		logName:    configReader.GetEnv("LOG_NAME"),
		serverPort: configReader.GetEnv("SERVER_PORT"),
		podName:    configReader.GetEnv("POD_NAME"),
		warmDepth:  configReader.GetEnvInt("WARM_DEPTH"),
		debug:      configReader.GetEnvBool("DEBUG"),
		local:      configReader.GetEnvBool("LOCAL"),
	}
	if configReader.Errors {
		log.Fatalf("could not gather environment variables. Failed variables: %v", configReader.MissingKeys)
	}
	env := &env{config: config}

	// Logger
	env.log = log.New(
		env.config.projectID,
		log.WithDefaultSeverity(logging.Error),
		log.WithDebug(env.config.debug),
		log.WithLocal(env.config.local),
		log.WithLogName(env.config.logName),
		log.WithPrefix(env.config.podName+": "),
	)
	env.log.Debug("Logger up and running!")
	defer log.Println("Shutting down logger.")
	defer env.log.Close()

	// Warm the dice-sum cache before taking traffic so typical calls never
	// pay a convolution.
	warmDepth := env.config.warmDepth
	if warmDepth <= 0 {
		warmDepth = combat.DefaultWarmDepth
	}
	env.calculator = combat.NewCalculator(combat.WithWarmDepth(warmDepth))
	env.log.Debugf("dice-sum cache warmed to %d dice", env.calculator.Depth())

	lis, err := net.Listen("tcp", env.config.serverPort)
	if err != nil {
		env.log.Criticalf("failed to listen: %v", err)
		return
	}
	s := grpc.NewServer()
	combat.RegisterCalculatorServer(s, newServer(env))

	// Register reflection service on gRPC server.
	reflection.Register(s)
	log.Println("combat-server up.")
	if err := s.Serve(lis); err != nil {
		env.log.Criticalf("failed to serve: %v", err)
		return
	}
}

// exposeError maps an internal error to the wire error that clients see.
// Unexpected errors additionally propagate as grpc errors.
func (s *server) exposeError(e error) (*combat.CalcError, error) {
	log := s.env.log
	wireErr := &combat.CalcError{}
	switch e := e.(type) {
	case *errors.CalcError:
		log.Errorf("CalcError: %+v", e)
		wireErr.Code = e.Code
		switch e.Code {
		case errors.InvalidDistribution, errors.Friendly:
			wireErr.Msg = e.Error()
		case errors.Unexpected:
		default:
			panic("Unexpected error can't surface.")
		}
	default:
		wireErr.Code = errors.Unexpected
		wireErr.Msg = "An unexpected error has occured. Please try again later"
		log.Criticalf("An unhandled error occured: %+v", e)
		return wireErr, e
	}
	return wireErr, nil
}

// Calculate runs the full attack-versus-defense pipeline and summarizes it.
func (s *server) Calculate(ctx context.Context, in *combat.CalculationRequest) (*combat.CalculationResponse, error) {
	log := s.env.log
	out := &combat.CalculationResponse{Ok: true}
	log.Debugf("calculating on server: %+v", in)

	result := s.env.calculator.FullCalculation(in.Resistance, in.BaseAttackBonus, in.AtkDice, in.Cover)
	log.Debugf("crushed distribution:\n%s", combat.DistributionString(result.Crushed))

	out.AverageDamage = result.AverageDamage
	out.HitChance = result.HitChance
	if in.Probabilities {
		out.Crushed = combat.ToPMF(result.Crushed)
	}
	if in.Chart {
		png, err := renderDistributionChart(result.Crushed)
		if err != nil {
			var grpcErr error
			out.Ok = false
			out.Error, grpcErr = s.exposeError(err)
			return out, grpcErr
		}
		out.Chart = png
	}
	log.Debugf("calculation response from server: avg=%v hit=%v", out.AverageDamage, out.HitChance)
	return out, nil
}

// NDice returns the distribution of the sum of n six-sided dice.
func (s *server) NDice(ctx context.Context, in *combat.NDiceRequest) (*combat.NDiceResponse, error) {
	out := &combat.NDiceResponse{Ok: true}
	s.env.log.Debugf("ndice request: n=%d", in.N)
	out.Distribution = combat.ToPMF(s.env.calculator.NDice(in.N))
	return out, nil
}

// Subtract returns the distribution of A-B for two supplied distributions.
func (s *server) Subtract(ctx context.Context, in *combat.SubtractRequest) (*combat.SubtractResponse, error) {
	out := &combat.SubtractResponse{Ok: true}
	a := combat.FromPMF(in.A)
	b := combat.FromPMF(in.B)
	if len(a) == 0 || len(b) == 0 {
		var grpcErr error
		out.Ok = false
		out.Error, grpcErr = s.exposeError(
			errors.NewCalcError("cannot subtract an empty distribution", errors.InvalidDistribution, nil))
		return out, grpcErr
	}
	out.Distribution = combat.ToPMF(combat.Subtract(a, b))
	return out, nil
}
