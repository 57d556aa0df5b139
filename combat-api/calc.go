package main

import (
	"strconv"
	"sync"
	"time"

	"github.com/serialx/hashring"
	"google.golang.org/grpc"

	"github.com/aasmall/combatmagic/lib/combat"
	errors "github.com/aasmall/combatmagic/lib/combat-errors"
	log "github.com/aasmall/combatmagic/lib/logger"
	"golang.org/x/net/context"
)

// CalcOption type to apply CalcOptions
type CalcOption func(*CalcOptions)

// CalcOptions contains options when calling combat-server
type CalcOptions struct {
	Chart         bool
	Probabilities bool
	Timeout       time.Duration
	Context       context.Context
}

// CalcOptionWithChart asks combat-server to render a chart
func CalcOptionWithChart(withChart bool) CalcOption {
	return func(o *CalcOptions) {
		o.Chart = withChart
	}
}

// CalcOptionWithProbabilities asks combat-server to return the full
// crushed distribution
func CalcOptionWithProbabilities(withProb bool) CalcOption {
	return func(o *CalcOptions) {
		o.Probabilities = withProb
	}
}

// CalcOptionWithTimeout specify a timeout
func CalcOptionWithTimeout(timeout time.Duration) CalcOption {
	return func(o *CalcOptions) {
		o.Timeout = timeout
	}
}

// CalcOptionWithContext specify a context
func CalcOptionWithContext(ctx context.Context) CalcOption {
	return func(o *CalcOptions) {
		o.Context = ctx
	}
}

// Calculate calls the supplied grpc client with one attack-versus-defense
// evaluation.
func Calculate(client combat.CalculatorClient, resistance, baseAttackBonus, atkDice, cover int64, options ...CalcOption) (*combat.CalculationResponse, error) {
	opts := CalcOptions{
		Chart:         false,
		Probabilities: false,
		Timeout:       time.Second,
		Context:       context.Background(),
	}
	for _, o := range options {
		o(&opts)
	}
	timeOutCtx, cancel := context.WithTimeout(opts.Context, opts.Timeout)
	defer cancel()
	request := &combat.CalculationRequest{
		Resistance:      resistance,
		BaseAttackBonus: baseAttackBonus,
		AtkDice:         atkDice,
		Cover:           cover,
		Probabilities:   opts.Probabilities,
		Chart:           opts.Chart,
	}
	return client.Calculate(timeOutCtx, request)
}

// calcServerRing routes requests to combat-server pods with a consistent
// hash over the dice count. Extending the dice-sum cache is the expensive
// part of a calculation, so a dice count should keep hitting the pod that
// has already paid for it.
type calcServerRing struct {
	mu    sync.Mutex
	log   *log.Logger
	ring  *hashring.HashRing
	conns map[string]*grpc.ClientConn
}

func newCalcServerRing(logger *log.Logger, addresses []string) *calcServerRing {
	return &calcServerRing{
		log:   logger,
		ring:  hashring.New(addresses),
		conns: map[string]*grpc.ClientConn{},
	}
}

// Update replaces the set of known combat-server addresses, closing
// connections to pods that went away.
func (r *calcServerRing) Update(addresses []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ring = hashring.New(addresses)
	keep := map[string]bool{}
	for _, a := range addresses {
		keep[a] = true
	}
	for addr, conn := range r.conns {
		if !keep[addr] {
			conn.Close()
			delete(r.conns, addr)
		}
	}
}

// ClientFor returns a calculator client for the pod that owns atkDice.
func (r *calcServerRing) ClientFor(atkDice int64) (combat.CalculatorClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	addr, ok := r.ring.GetNode(strconv.FormatInt(atkDice, 10))
	if !ok {
		return nil, errors.New("no combat-server pods available")
	}
	conn, ok := r.conns[addr]
	if !ok {
		var err error
		conn, err = grpc.Dial(addr, grpc.WithInsecure())
		if err != nil {
			return nil, errors.Newf("did not connect to combat-server(%s): %v", addr, err)
		}
		r.conns[addr] = conn
	}
	return combat.NewCalculatorClient(conn), nil
}

// Close drops every open combat-server connection.
func (r *calcServerRing) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for addr, conn := range r.conns {
		conn.Close()
		delete(r.conns, addr)
	}
}
