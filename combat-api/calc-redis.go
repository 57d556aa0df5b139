package main

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeFormat = "2006-01-02 15:04:05.999999999 -0700 MST"
const resultTTL = time.Hour * 24 * 30

// calcCacheKey builds the result-cache key for one calculation. The engine
// is deterministic, so the four inputs fully identify the result.
func calcCacheKey(resistance, baseAttackBonus, atkDice, cover int64) string {
	return fmt.Sprintf("calc:%d:%d:%d:%d", resistance, baseAttackBonus, atkDice, cover)
}

// GetCachedResult returns a previously computed calculation, if any.
func (env *environment) GetCachedResult(key string) (*RESTCalcResponse, bool) {
	blob, err := env.redisClient.Get(key).Result()
	if err != nil {
		return nil, false
	}
	resp := &RESTCalcResponse{}
	if err := json.Unmarshal([]byte(blob), resp); err != nil {
		env.log.Errorf("Corrupt cache entry, deleting (%s): %v", key, err)
		env.redisClient.Del(key)
		return nil, false
	}
	return resp, true
}

// SetCachedResult stores a computed calculation for reuse by any gateway pod.
func (env *environment) SetCachedResult(key string, resp *RESTCalcResponse) error {
	blob, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return env.redisClient.Set(key, string(blob), resultTTL).Err()
}

// PingPods writes this pod's heartbeat into the shared registry every two
// seconds until shutdown.
func (env *environment) PingPods() {
	for !env.ShuttingDown {
		env.redisClient.HSet("pods", env.config.podName, time.Now().Format(timeFormat))
		time.Sleep(time.Second * 2)
	}
}

// DeleteSleepingPods sweeps pods that stopped heartbeating out of the
// registry.
func (env *environment) DeleteSleepingPods() {
	for !env.ShuttingDown {
		hashMap := env.redisClient.HGetAll("pods").Val()
		for k, v := range hashMap {
			lastCheckin, err := time.Parse(timeFormat, v)
			if err != nil {
				env.log.Criticalf("Error parsing time. Deleting offending entry(%s): %v", k, err)
				env.redisClient.HDel("pods", k)
				continue
			}
			if time.Now().Sub(lastCheckin).Seconds() >= 10 {
				env.redisClient.HDel("pods", k)
			}
		}
		time.Sleep(time.Second * 2)
	}
}

// GetPods returns the names of live gateway pods.
func (env *environment) GetPods() []string {
	return env.redisClient.HKeys("pods").Val()
}
