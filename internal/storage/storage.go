package storage

import (
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/hailam/extinction/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
	prefixResult   = "result:"
)

// Preferences stores user settings
type Preferences struct {
	Username      string    `json:"username"`
	SoundEnabled  bool      `json:"sound_enabled"`
	ShowTargets   bool      `json:"show_targets"`
	ColoredOutput bool      `json:"colored_output"`
	LastPlayed    time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		Username:      "Player",
		SoundEnabled:  true,
		ShowTargets:   true,
		ColoredOutput: true,
		LastPlayed:    time.Now(),
	}
}

// Stats stores aggregate game statistics. WinsByType counts wins by the
// piece type that went extinct; CapturesByType counts captured pieces.
type Stats struct {
	GamesPlayed    int            `json:"games_played"`
	WhiteWins      int            `json:"white_wins"`
	BlackWins      int            `json:"black_wins"`
	WinsByType     map[string]int `json:"wins_by_type"`
	CapturesByType map[string]int `json:"captures_by_type"`
	TotalMoves     int            `json:"total_moves"`
	TotalPlayTime  time.Duration  `json:"total_play_time"`
	ShortestWin    int            `json:"shortest_win"`
	LongestWin     int            `json:"longest_win"`
}

// NewStats returns empty game statistics
func NewStats() *Stats {
	return &Stats{
		WinsByType:     make(map[string]int),
		CapturesByType: make(map[string]int),
	}
}

// WinRate returns the share of finished games won by c as a percentage (0-100).
func (st *Stats) WinRate(c board.Color) float64 {
	if st.GamesPlayed == 0 {
		return 0
	}
	wins := st.WhiteWins
	if c == board.Black {
		wins = st.BlackWins
	}
	return float64(wins) / float64(st.GamesPlayed) * 100
}

// GameResult represents the result of a completed game
type GameResult struct {
	Winner     board.Color
	Eliminated board.PieceType
	Moves      int
	Duration   time.Duration
	Captures   map[board.PieceType]int
}

// Result records one finished game.
type Result struct {
	ID         string          `json:"id"`
	Winner     board.Color     `json:"winner"`
	Eliminated board.PieceType `json:"eliminated"`
	Moves      int             `json:"moves"`
	Duration   time.Duration   `json:"duration"`
	Finished   time.Time       `json:"finished"`
}

// Store wraps BadgerDB for persistent storage
type Store struct {
	db *badger.DB
}

// Open opens a store backed by a Badger database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Store) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Store) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Store) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := sonic.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Store) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return sonic.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves game statistics
func (s *Store) SaveStats(stats *Stats) error {
	data, err := sonic.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Store) LoadStats() (*Stats, error) {
	stats := NewStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return sonic.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordResult stores a finished game and folds it into the statistics.
func (s *Store) RecordResult(res GameResult) (Result, error) {
	row := Result{
		ID:         uuid.NewString(),
		Winner:     res.Winner,
		Eliminated: res.Eliminated,
		Moves:      res.Moves,
		Duration:   res.Duration,
		Finished:   time.Now(),
	}

	stats, err := s.LoadStats()
	if err != nil {
		return Result{}, err
	}

	stats.GamesPlayed++
	stats.TotalMoves += res.Moves
	stats.TotalPlayTime += res.Duration
	switch res.Winner {
	case board.White:
		stats.WhiteWins++
	case board.Black:
		stats.BlackWins++
	}
	if res.Eliminated != board.NoPieceType {
		stats.WinsByType[res.Eliminated.String()]++
	}
	for pt, n := range res.Captures {
		stats.CapturesByType[pt.String()] += n
	}
	if stats.ShortestWin == 0 || res.Moves < stats.ShortestWin {
		stats.ShortestWin = res.Moves
	}
	if res.Moves > stats.LongestWin {
		stats.LongestWin = res.Moves
	}

	rowData, err := sonic.Marshal(row)
	if err != nil {
		return Result{}, err
	}
	statsData, err := sonic.Marshal(stats)
	if err != nil {
		return Result{}, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(prefixResult+row.ID), rowData); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
	if err != nil {
		return Result{}, err
	}

	return row, nil
}

// Results returns all recorded games, oldest first.
func (s *Store) Results() ([]Result, error) {
	var results []Result

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(prefixResult)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var r Result
				if err := sonic.Unmarshal(val, &r); err != nil {
					return err
				}
				results = append(results, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Finished.Before(results[j].Finished)
	})
	return results, nil
}
