package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/logging"
	"github.com/aasmall/combatmagic/lib/envreader"
	"github.com/aasmall/combatmagic/lib/handler"
	log "github.com/aasmall/combatmagic/lib/logger"
	"github.com/go-redis/redis/v7"
	"github.com/gorilla/mux"
	"golang.org/x/net/context"
)

type environment struct {
	config         *envConfig
	log            *log.Logger
	redisClient    *redis.ClusterClient
	calcServers    *calcServerRing
	ShuttingDown   bool
	configReloader func() (*envConfig, error)
}

type envConfig struct {
	projectID         string
	logName           string
	serverPort        string
	combatServerPort  string
	redisPort         string
	podName           string
	localCombatServer string
	redisClusterHosts []string
	combatServerHosts []string
	debug             bool
	local             bool
}

func getEnvironmentalConfig(options ...envreader.Option) (*envConfig, error) {
	// Gather Environment Variables
	configReader := envreader.NewEnvReader(options...)
	config := &envConfig{
		projectID:         configReader.GetEnv("PROJECT_ID"),
		logName:           configReader.GetEnv("LOG_NAME"),
		serverPort:        configReader.GetEnv("SERVER_PORT"),
		combatServerPort:  configReader.GetEnv("COMBAT_SERVER_PORT"),
		redisPort:         configReader.GetEnv("REDIS_PORT"),
		podName:           configReader.GetEnv("POD_NAME"),
		localCombatServer: configReader.GetEnvOpt("LOCAL_COMBAT_SERVER"),
		debug:             configReader.GetEnvBoolOpt("DEBUG"),
		local:             configReader.GetEnvBoolOpt("LOCAL"),
		redisClusterHosts: configReader.GetPodHosts("k8s-app=redis"),
		combatServerHosts: configReader.GetPodHosts("k8s-app=combat-server"),
	}
	if configReader.Errors {
		return nil, fmt.Errorf("Could not gather config. Failed variables: %v", configReader.MissingKeys)
	}
	return config, nil
}

func (env *environment) ReloadConfig() error {
	config, err := env.configReloader()
	if err != nil {
		return err
	}
	env.config = config
	return nil
}

func main() {
	log.Printf("hello.")
	env := &environment{configReloader: func() (*envConfig, error) { return getEnvironmentalConfig() }}
	err := env.ReloadConfig()
	if err != nil {
		log.Fatalf("ERROR OCCURED BEFORE LOGGING: %s", err)
	}

	// Logger
	env.log = log.New(
		env.config.projectID,
		log.WithDefaultSeverity(logging.Error),
		log.WithDebug(env.config.debug),
		log.WithLocal(env.config.local),
		log.WithLogName(env.config.logName),
		log.WithPrefix(env.config.podName+": "),
	)
	env.log.Info("Logger up and running!")
	defer log.Println("Shutting down logger.")
	defer env.log.Close()

	// keep config and the combat-server ring up to date
	go func() {
		ticker := time.NewTicker(time.Second * 60)
		defer ticker.Stop()
		for range ticker.C {
			if err := env.ReloadConfig(); err != nil {
				env.log.Criticalf("Could not reload config: %v", err)
				continue
			}
			env.calcServers.Update(env.combatServerAddresses())
		}
	}()

	env.log.Infof("Creating redis cluster client with URIs: %v", env.redisClusterAddresses())
	env.redisClient = redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:    env.redisClusterAddresses(),
		Password: "",
	})

	// combat-server clients, keyed by consistent hash so a given dice count
	// keeps landing on the pod whose cache already covers it
	env.calcServers = newCalcServerRing(env.log, env.combatServerAddresses())

	// pod registry heartbeats
	go env.PingPods()
	go env.DeleteSleepingPods()

	// Define inbound Routes
	r := mux.NewRouter()
	r.Handle("/calc", handler.Handler{Env: env, H: RESTCalcHandler})
	r.Handle("/ndice", handler.Handler{Env: env, H: RESTNDiceHandler})
	r.Handle("/", handler.Handler{Env: env, H: rootHandler})

	// Define a server with timeouts
	srv := &http.Server{
		Addr:         env.config.serverPort,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      r,
	}

	// Run our server in a goroutine so that it doesn't block.
	go func() {
		err := srv.ListenAndServe()
		if err != nil {
			log.Printf("ListenAndServe error: %+v", err)
		}
	}()

	// We'll accept graceful shutdowns when quit via SIGINT (Ctrl+C)
	// SIGKILL, SIGQUIT or SIGTERM (Ctrl+/)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive our signal.
	<-c
	env.ShuttingDown = true

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()

	// Doesn't block if no connections, but will otherwise wait
	// until the timeout deadline.
	go func() {
		srv.Shutdown(ctx)
	}()
	<-ctx.Done()
	env.calcServers.Close()
	log.Println("shut down")
}

func rootHandler(e interface{}, w http.ResponseWriter, r *http.Request) error {
	fmt.Fprint(w, "200")
	return nil
}

func (env *environment) isLocal() bool {
	return env.config.local
}

func (env *environment) redisClusterAddresses() []string {
	clusterURIs := make([]string, len(env.config.redisClusterHosts))
	copy(clusterURIs, env.config.redisClusterHosts)
	for i, s := range clusterURIs {
		clusterURIs[i] = fmt.Sprintf("%s:%s", strings.TrimSpace(s), env.config.redisPort)
	}
	sort.Strings(clusterURIs)
	return clusterURIs
}

func (env *environment) combatServerAddresses() []string {
	if env.isLocal() && env.config.localCombatServer != "" {
		return []string{env.config.localCombatServer}
	}
	addresses := make([]string, len(env.config.combatServerHosts))
	copy(addresses, env.config.combatServerHosts)
	for i, s := range addresses {
		addresses[i] = fmt.Sprintf("%s:%s", strings.TrimSpace(s), env.config.combatServerPort)
	}
	sort.Strings(addresses)
	return addresses
}
