// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"github.com/stationctl/stationctl/model"
	"github.com/stationctl/stationctl/session"
)

// Option is a functional option for configuring Station
type Option func(*Station) error

// WithSessionDirectory sets the session store to a directory of event files
func WithSessionDirectory(path string) Option {
	return func(s *Station) error {
		log, err := s.Logger("session", "directory", "path", path)
		if err != nil {
			return err
		}

		sess, err := session.NewDirectorySessionStore(path, log, s.userLogger)
		if err != nil {
			return err
		}

		s.session = sess

		return nil
	}
}

// WithNoop enables dry-run mode, mutating actions are recorded but never performed
func WithNoop() Option {
	return func(s *Station) error {
		s.noop = true

		return nil
	}
}

// WithInteractive allows the operator to be prompted for decisions
func WithInteractive() Option {
	return func(s *Station) error {
		s.interactive = true

		return nil
	}
}

// WithPrompter overrides the interactive prompt resolver, used in tests
func WithPrompter(p model.Prompter) Option {
	return func(s *Station) error {
		s.prompter = p

		return nil
	}
}

// WithExtraFacts merges additional facts over the gathered system facts
func WithExtraFacts(facts map[string]any) Option {
	return func(s *Station) error {
		s.extraFacts = facts

		return nil
	}
}
