package main

import (
	"context"
	"reflect"
	"testing"

	"github.com/aasmall/combatmagic/lib/envreader"
	"github.com/davecgh/go-spew/spew"
	"github.com/gobuffalo/envy"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	v1 "k8s.io/client-go/kubernetes/typed/core/v1"
)

type mockPod struct {
	v1.PodInterface
}

func (pi *mockPod) List(ctx context.Context, opts metav1.ListOptions) (*corev1.PodList, error) {
	return &corev1.PodList{Items: []corev1.Pod{{Status: corev1.PodStatus{PodIP: "test_ip"}}}}, nil
}

type mockConfigMap struct {
	v1.ConfigMapInterface
}

func (cmi *mockConfigMap) Get(ctx context.Context, name string, opts metav1.GetOptions) (*corev1.ConfigMap, error) {
	return &corev1.ConfigMap{Data: map[string]string{"test_config_map_key": "test_config_map_value"}}, nil
}

type mockioutil struct {
	envreader.IoutilInterface
}

func (mockioutil) ReadFile(filename string) ([]byte, error) { return []byte("test_file_contents"), nil }

var (
	testConfigMap = &mockConfigMap{}
	testPod       = &mockPod{}
	testioutil    = &mockioutil{}
)

func Test_getEnvironmentalConfig(t *testing.T) {
	envy.Temp(func() {
		tempOSVariables := map[string]string{
			"LOG_NAME":           "test_log_name",
			"SERVER_PORT":        "test_server_port",
			"COMBAT_SERVER_PORT": "test_combat_server_port",
			"REDIS_PORT":         "test_redis_port",
			"POD_NAME":           "test_pod_name",
			"DEBUG":              "true",
		}
		for key, value := range tempOSVariables {
			envy.Set(key, value)
		}
		errorTest := struct {
			name    string
			want    *envConfig
			wantErr bool
		}{
			name:    "getEnvConfigWithError",
			want:    nil,
			wantErr: true,
		}
		t.Run(errorTest.name, func(t *testing.T) {
			got, err := getEnvironmentalConfig(
				envreader.WithConfigMapInterface(testConfigMap),
				envreader.WithPodInterface(testPod),
				envreader.WithFilesystem(testioutil))
			if (err != nil) != errorTest.wantErr {
				t.Errorf("getEnvironmentalConfig() error = %v, wantErr %v", err, errorTest.wantErr)
				return
			}
			if !reflect.DeepEqual(got, errorTest.want) {
				t.Errorf("getEnvironmentalConfig() = %+v, want %+v", spew.Sdump(got), spew.Sdump(errorTest.want))
			}
		})

		envy.Set("PROJECT_ID", "test_project")
		happyTest := struct {
			name    string
			want    *envConfig
			wantErr bool
		}{
			name: "getEnvConfig",
			want: &envConfig{
				projectID:         "test_project",
				logName:           "test_log_name",
				serverPort:        "test_server_port",
				combatServerPort:  "test_combat_server_port",
				redisPort:         "test_redis_port",
				podName:           "test_pod_name",
				debug:             true,
				local:             false,
				redisClusterHosts: []string{"test_ip"},
				combatServerHosts: []string{"test_ip"},
			},
			wantErr: false,
		}
		t.Run(happyTest.name, func(t *testing.T) {
			got, err := getEnvironmentalConfig(
				envreader.WithConfigMapInterface(testConfigMap),
				envreader.WithPodInterface(testPod),
				envreader.WithFilesystem(testioutil))
			if (err != nil) != happyTest.wantErr {
				t.Errorf("getEnvironmentalConfig() error = %v, wantErr %v", err, happyTest.wantErr)
				return
			}
			if !reflect.DeepEqual(got, happyTest.want) {
				t.Errorf("getEnvironmentalConfig() = %+v, want %+v", spew.Sdump(got), spew.Sdump(happyTest.want))
			}
		})
	})
}

func Test_calcCacheKey(t *testing.T) {
	if got := calcCacheKey(2, 1, 1, 0); got != "calc:2:1:1:0" {
		t.Errorf("calcCacheKey() = %s, want calc:2:1:1:0", got)
	}
	if calcCacheKey(2, 1, 1, 0) == calcCacheKey(2, 1, 1, 1) {
		t.Error("calcCacheKey() collides across differing cover values")
	}
}

// A fixed pod set must route a given dice count to one pod, reusing the
// connection, and an emptied ring must refuse rather than dial.
func Test_calcServerRing(t *testing.T) {
	ring := newCalcServerRing(nil, []string{"10.0.0.1:50051", "10.0.0.2:50051", "10.0.0.3:50051"})
	defer ring.Close()
	if _, err := ring.ClientFor(17); err != nil {
		t.Fatalf("ClientFor() error = %v", err)
	}
	if _, err := ring.ClientFor(17); err != nil {
		t.Fatalf("ClientFor() error = %v", err)
	}
	if len(ring.conns) != 1 {
		t.Errorf("ClientFor() dialed %d conns for one dice count, want 1", len(ring.conns))
	}
	ring.Update(nil)
	if len(ring.conns) != 0 {
		t.Errorf("Update(nil) left %d conns open, want 0", len(ring.conns))
	}
	if _, err := ring.ClientFor(17); err == nil {
		t.Error("ClientFor() on an empty ring did not error")
	}
}

func Test_queryInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"3", 3},
		{"3.9", 3},
		{"-5", 0},
		{"5000", 1000},
		{"banana", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := queryInt(tt.in); got != tt.want {
			t.Errorf("queryInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
