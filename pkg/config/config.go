package config

import "os"

// BatchPick controls which batch a shipper entry falls back to when the
// caller does not select one explicitly.
type BatchPick string

const (
	BatchPickOldest BatchPick = "oldest"
	BatchPickNewest BatchPick = "newest"
)

type Config struct {
	Port      string
	JWTSecret string
	// QRBaseURL is the fixed deployment origin baked into every generated
	// code, regardless of the host the generating request came in on.
	QRBaseURL        string
	ShipperBatchPick BatchPick
}

func Load() *Config {
	cfg := &Config{
		Port:             getenv("PORT", "3000"),
		JWTSecret:        getenv("JWT_SECRET", ""),
		QRBaseURL:        getenv("QR_BASE_URL", "http://localhost:3000"),
		ShipperBatchPick: BatchPick(getenv("SHIPPER_BATCH_PICK", string(BatchPickOldest))),
	}
	if cfg.ShipperBatchPick != BatchPickNewest {
		cfg.ShipperBatchPick = BatchPickOldest
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
