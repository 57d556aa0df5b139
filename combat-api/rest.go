package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aasmall/combatmagic/lib/combat"
	errors "github.com/aasmall/combatmagic/lib/combat-errors"
	"golang.org/x/net/context"
)

// RESTOutcome is one (value, probability) pair of a distribution.
type RESTOutcome struct {
	Value       int64   `json:"value"`
	Probability float64 `json:"probability"`
}

// RESTCalcRequest is the Go representation of the request JSON
type RESTCalcRequest struct {
	Resistance      int64 `json:"resistance"`
	BaseAttackBonus int64 `json:"base_attack_bonus"`
	AtkDice         int64 `json:"atk_dice"`
	Cover           int64 `json:"cover"`
	Chart           bool  `json:"with_chart,omitempty"`
	Probability     bool  `json:"with_probability,omitempty"`
}

// RESTCalcResponse is the Go representation of the response JSON
type RESTCalcResponse struct {
	Ok            bool          `json:"ok"`
	Err           string        `json:"err,omitempty"`
	AverageDamage float64       `json:"average_damage"`
	HitChance     float64       `json:"hit_chance"`
	Crushed       []RESTOutcome `json:"crushed,omitempty"`
	Chart         []byte        `json:"chart,omitempty"`
	Cached        bool          `json:"cached,omitempty"`
}

// RESTNDiceResponse is the Go representation of the /ndice response JSON
type RESTNDiceResponse struct {
	Ok           bool          `json:"ok"`
	Err          string        `json:"err,omitempty"`
	N            int64         `json:"n"`
	Distribution []RESTOutcome `json:"distribution"`
}

// decodeCalcRequest accepts either a JSON body (POST) or query parameters
// (GET). Malformed numbers clamp instead of erroring, the same way the
// engine treats out-of-range dice counts.
func decodeCalcRequest(r *http.Request) (*RESTCalcRequest, error) {
	req := &RESTCalcRequest{}
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, err
		}
		return req, nil
	}
	q := r.URL.Query()
	req.Resistance = queryInt(q.Get("resistance"))
	req.BaseAttackBonus = queryInt(q.Get("base_attack_bonus"))
	req.AtkDice = queryInt(q.Get("atk_dice"))
	req.Cover = queryInt(q.Get("cover"))
	req.Chart = strings.EqualFold(q.Get("with_chart"), "true")
	req.Probability = strings.EqualFold(q.Get("with_probability"), "true")
	return req, nil
}

func queryInt(s string) int64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return combat.ClampInt(f, 0, combat.MaxDice)
}

func restOutcomes(pmf *combat.PMF) []RESTOutcome {
	if pmf == nil {
		return nil
	}
	outcomes := make([]RESTOutcome, 0, len(pmf.Outcomes))
	for _, o := range pmf.Outcomes {
		outcomes = append(outcomes, RESTOutcome{Value: o.Value, Probability: o.Probability})
	}
	return outcomes
}

// RESTCalcHandler handles requests to /calc
func RESTCalcHandler(e interface{}, w http.ResponseWriter, r *http.Request) error {
	env, _ := e.(*environment)
	log := env.log.WithRequest(r)

	req, err := decodeCalcRequest(r)
	if err != nil {
		log.Errorf("Unexpected error decoding REST request: %+v", err)
		return err
	}

	// The engine is deterministic, so identical inputs can skip the round
	// trip entirely. Chart requests bypass the cache; the PNG is too big
	// to park in redis for a month.
	key := calcCacheKey(req.Resistance, req.BaseAttackBonus, req.AtkDice, req.Cover)
	if !req.Chart {
		if cached, ok := env.GetCachedResult(key); ok {
			cached.Cached = true
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return nil
		}
	}

	resp := &RESTCalcResponse{}
	client, err := env.calcServers.ClientFor(req.AtkDice)
	if err != nil {
		errString := fmt.Sprintf("Unexpected error: %+v", err)
		resp.Ok = false
		resp.Err = errString
		env.log.Error(errString)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
		return nil
	}
	combatServerResponse, err := Calculate(client,
		req.Resistance, req.BaseAttackBonus, req.AtkDice, req.Cover,
		CalcOptionWithProbabilities(req.Probability),
		CalcOptionWithChart(req.Chart),
		CalcOptionWithContext(context.TODO()),
		CalcOptionWithTimeout(time.Second*2))
	if err != nil {
		errString := fmt.Sprintf("Unexpected error: %+v", err)
		resp.Ok = false
		resp.Err = errString
		env.log.Error(errString)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
		return nil
	}
	if combatServerResponse.Ok {
		resp.Ok = true
		resp.AverageDamage = combatServerResponse.AverageDamage
		resp.HitChance = combatServerResponse.HitChance
		resp.Crushed = restOutcomes(combatServerResponse.Crushed)
		resp.Chart = combatServerResponse.Chart
		if !req.Chart {
			if err := env.SetCachedResult(key, resp); err != nil {
				env.log.Errorf("could not cache result (%s): %v", key, err)
			}
		}
	} else {
		if combatServerResponse.Error.Code == errors.Friendly {
			resp.Ok = true
			resp.Err = combatServerResponse.Error.Msg
		} else {
			resp.Ok = false
			resp.Err = combatServerResponse.Error.Msg
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
	return nil
}

// RESTNDiceHandler handles requests to /ndice
func RESTNDiceHandler(e interface{}, w http.ResponseWriter, r *http.Request) error {
	env, _ := e.(*environment)
	log := env.log.WithRequest(r)

	n := queryInt(r.URL.Query().Get("n"))
	resp := &RESTNDiceResponse{N: n}

	client, err := env.calcServers.ClientFor(n)
	if err != nil {
		resp.Ok = false
		resp.Err = fmt.Sprintf("Unexpected error: %+v", err)
		env.log.Error(resp.Err)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
		return nil
	}
	timeOutCtx, cancel := context.WithTimeout(context.TODO(), time.Second*2)
	defer cancel()
	combatServerResponse, err := client.NDice(timeOutCtx, &combat.NDiceRequest{N: n})
	if err != nil {
		resp.Ok = false
		resp.Err = fmt.Sprintf("Unexpected error: %+v", err)
		log.Errorf("ndice call failed: %+v", err)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
		return nil
	}
	resp.Ok = combatServerResponse.Ok
	resp.Distribution = restOutcomes(combatServerResponse.Distribution)
	if combatServerResponse.Error != nil {
		resp.Err = combatServerResponse.Error.Msg
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
	return nil
}
