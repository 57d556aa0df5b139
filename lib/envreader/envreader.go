package envreader

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	v1 "k8s.io/client-go/kubernetes/typed/core/v1"
	"k8s.io/client-go/rest"
)

// IoutilInterface is the slice of ioutil an EnvReader needs, split out so
// tests can supply a fake filesystem.
type IoutilInterface interface {
	ReadFile(filename string) ([]byte, error)
}

type osFilesystem struct{}

func (osFilesystem) ReadFile(filename string) ([]byte, error) { return ioutil.ReadFile(filename) }

// EnvReader collects configuration from environment variables, mounted
// files, and the kubernetes API. Missing required values are recorded
// rather than failing fast so a caller can report them all at once.
type EnvReader struct {
	MissingKeys []string
	Errors      bool

	kubernetesClient *kubernetes.Clientset
	configMaps       v1.ConfigMapInterface
	pods             v1.PodInterface
	fs               IoutilInterface
}

// Option overrides one of the EnvReader's external interfaces.
type Option func(*EnvReader)

// WithConfigMapInterface substitutes the config map client.
func WithConfigMapInterface(c v1.ConfigMapInterface) Option {
	return func(r *EnvReader) { r.configMaps = c }
}

// WithPodInterface substitutes the pod client.
func WithPodInterface(p v1.PodInterface) Option {
	return func(r *EnvReader) { r.pods = p }
}

// WithFilesystem substitutes the filesystem.
func WithFilesystem(fs IoutilInterface) Option {
	return func(r *EnvReader) { r.fs = fs }
}

// NewEnvReader creates an EnvReader backed by the real environment unless
// options say otherwise.
func NewEnvReader(options ...Option) *EnvReader {
	r := &EnvReader{fs: osFilesystem{}}
	for _, o := range options {
		o(r)
	}
	return r
}

// GetEnv returns a required environment variable, recording it as missing
// when unset.
func (r *EnvReader) GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	r.Errors = true
	r.MissingKeys = append(r.MissingKeys, key)
	return ""
}

// GetEnvOpt returns an optional environment variable.
func (r *EnvReader) GetEnvOpt(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return ""
}

// GetEnvBool returns a required boolean environment variable.
func (r *EnvReader) GetEnvBool(key string) bool {
	text := r.GetEnv(key)
	if value, err := strconv.ParseBool(text); err == nil {
		return value
	}
	return false
}

// GetEnvBoolOpt returns an optional boolean environment variable.
func (r *EnvReader) GetEnvBoolOpt(key string) bool {
	text := r.GetEnvOpt(key)
	if value, err := strconv.ParseBool(text); err == nil {
		return value
	}
	return false
}

// GetEnvFloat returns a required float environment variable.
func (r *EnvReader) GetEnvFloat(key string) float64 {
	text := r.GetEnv(key)
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return value
	}
	return 0
}

// GetEnvInt returns a required integer environment variable.
func (r *EnvReader) GetEnvInt(key string) int64 {
	text := r.GetEnv(key)
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value
	}
	return 0
}

// GetFromFile returns the contents of a mounted secret or config file,
// recording the path as missing on any read error.
func (r *EnvReader) GetFromFile(path string) []byte {
	content, err := r.fs.ReadFile(path)
	if err != nil {
		r.Errors = true
		r.MissingKeys = append(r.MissingKeys, "file at: "+path)
		return nil
	}
	return content
}

func (r *EnvReader) getKubernetesClient() error {
	// creates the in-cluster config
	config, err := rest.InClusterConfig()
	if err != nil {
		log.Printf("Error creating Kubernetes InClusterConfig: %s", err)
		return err
	}
	// creates the clientset
	kubernetesClient, err := kubernetes.NewForConfig(config)
	if err != nil {
		log.Printf("Error creating Kubernetes Client: %s", err)
		return err
	}
	r.kubernetesClient = kubernetesClient
	r.configMaps = kubernetesClient.CoreV1().ConfigMaps("default")
	r.pods = kubernetesClient.CoreV1().Pods("default")
	return nil
}

// GetConfigMap returns one key from a kubernetes config map.
func (r *EnvReader) GetConfigMap(configMapName string, dataKey string) string {
	if r.configMaps == nil {
		if err := r.getKubernetesClient(); err != nil {
			r.Errors = true
			r.MissingKeys = append(r.MissingKeys, fmt.Sprintf("%s.%s", configMapName, dataKey))
			return ""
		}
	}
	configMap, err := r.configMaps.Get(context.TODO(), configMapName, metav1.GetOptions{})
	if err != nil {
		r.Errors = true
		r.MissingKeys = append(r.MissingKeys, fmt.Sprintf("%s.%s", configMapName, dataKey))
		return ""
	}
	data := configMap.Data[dataKey]
	if data == "" {
		r.Errors = true
		r.MissingKeys = append(r.MissingKeys, fmt.Sprintf("%s.%s", configMapName, dataKey))
		return ""
	}
	return data
}

// GetPodHosts returns the pod IPs matching a label selector. Errors are
// recorded and return nil; an empty cluster is not fatal at config time.
func (r *EnvReader) GetPodHosts(labelSelector string) []string {
	if r.pods == nil {
		if err := r.getKubernetesClient(); err != nil {
			r.Errors = true
			r.MissingKeys = append(r.MissingKeys, "PodHosts: "+labelSelector)
			return nil
		}
	}
	listOptions := metav1.ListOptions{LabelSelector: labelSelector}
	pods, err := r.pods.List(context.TODO(), listOptions)
	if err != nil {
		r.Errors = true
		r.MissingKeys = append(r.MissingKeys, "PodHosts: "+labelSelector)
		return nil
	}
	var hosts []string
	for i := 0; i < len(pods.Items); i++ {
		hosts = append(hosts, pods.Items[i].Status.PodIP)
	}
	return hosts
}
