package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"github.com/JordiPons-11/chessrank/utils"
	"gorm.io/gorm"
)

// seedUser is one entry of the declarative account list.
type seedUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SeedUsers reconciles the users table with the JSON account list at path:
// new usernames are inserted with a bcrypt hash, existing ones are left
// untouched. Malformed entries are logged and skipped so one bad record never
// blocks startup. A missing file is not an error.
func SeedUsers(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read user seed file %s: %w", path, err)
	}

	var seeds []seedUser
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("parse user seed file %s: %w", path, err)
	}

	repo := NewAuthRepository(db)
	for i, seed := range seeds {
		if seed.Username == "" || seed.Password == "" {
			log.Printf("user seeding: skipping entry %d: username and password are required", i)
			continue
		}

		existing, err := repo.FindUserByUsername(seed.Username)
		if err != nil {
			return fmt.Errorf("look up seed user %q: %w", seed.Username, err)
		}
		if existing != nil {
			continue
		}

		hash, err := utils.HashPassword(seed.Password)
		if err != nil {
			log.Printf("user seeding: skipping %q: %v", seed.Username, err)
			continue
		}

		if err := repo.CreateUser(&User{Username: seed.Username, PasswordHash: hash}); err != nil {
			// A concurrent insert of the same username is fine; anything else is not.
			if errors.Is(err, apperrors.ErrUniqueness) {
				continue
			}
			return fmt.Errorf("create seed user %q: %w", seed.Username, err)
		}
		log.Printf("user seeding: created %q", seed.Username)
	}
	return nil
}
