package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Game tunables. Defaults match the reference deployment.
const (
	DefaultRoundSeconds     = 80
	DefaultTotalRounds      = 3
	DefaultRoundEndSeconds  = 3
	DefaultMatchOverSeconds = 10
	DefaultMaxPlayers       = 8
)

type Config struct {
	Port            string
	GinMode         string
	FrontendOrigin  string
	WordsFile       string
	RoundSeconds    int
	TotalRounds     int
	RoundEndDelay   int
	MatchOverDelay  int
	MaxPlayers      int
}

// Load reads the environment (after attempting a .env file, which is
// optional) and returns the process configuration.
func Load() Config {
	godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "3000"),
		GinMode:        getEnv("GIN_MODE", ""),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "localhost:5173"),
		WordsFile:      getEnv("WORDS_FILE", "./words.txt"),
		RoundSeconds:   getEnvInt("ROUND_SECONDS", DefaultRoundSeconds),
		TotalRounds:    getEnvInt("TOTAL_ROUNDS", DefaultTotalRounds),
		RoundEndDelay:  getEnvInt("ROUND_END_DELAY", DefaultRoundEndSeconds),
		MatchOverDelay: getEnvInt("MATCH_OVER_DELAY", DefaultMatchOverSeconds),
		MaxPlayers:     getEnvInt("MAX_PLAYERS", DefaultMaxPlayers),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
