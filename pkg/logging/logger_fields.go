package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers for common analysis attributes

func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func NodeID(id uint64) Field {
	return Uint64("node_id", id)
}

func Order(order int) Field {
	return Int("order", order)
}

func Run(run int) Field {
	return Int("run", run)
}

func Runs(runs int) Field {
	return Int("runs", runs)
}

func Subsets(n int) Field {
	return Int("subsets", n)
}

func Patterns(n int) Field {
	return Int("patterns", n)
}

func Edges(n int) Field {
	return Int("hyperedges", n)
}

func Nodes(n int) Field {
	return Int("nodes", n)
}

func Seed(seed int64) Field {
	return Int64("seed", seed)
}

func Steps(n int) Field {
	return Int("steps", n)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
