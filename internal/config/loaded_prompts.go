package config

import (
	"sync"
)

var (
	loadedPromptsMu sync.RWMutex
	loadedPrompts   AllLoadedPrompts
)

// LoadedPrompts holds the content of prompts loaded from files
type LoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// LoadedSystemPrompts contains loaded system-level instructions
type LoadedSystemPrompts struct {
	AnalyzeResume string
}

// LoadedUserPrompts contains loaded user-level prompt templates
type LoadedUserPrompts struct {
	AnalyzeResume string
}

// OperationLoadedPrompts holds loaded prompts for a specific operation
type OperationLoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// AllLoadedPrompts holds all loaded prompts for all operations
type AllLoadedPrompts struct {
	Global  LoadedPrompts
	Analyze OperationLoadedPrompts
}

// GetPromptsForOperation returns a copy of the loaded prompts for an operation type
func GetPromptsForOperation(operationType string) OperationLoadedPrompts {
	all := getLoadedPromptsCopy()

	switch operationType {
	case "analyze":
		return all.Analyze
	default:
		return OperationLoadedPrompts{
			SystemPrompts: all.Global.SystemPrompts,
			UserPrompts:   all.Global.UserPrompts,
		}
	}
}

// getLoadedPromptsCopy returns a snapshot of all loaded prompts. The watcher
// may swap the backing state at any time, so callers never hold a reference
// into it.
func getLoadedPromptsCopy() AllLoadedPrompts {
	loadedPromptsMu.RLock()
	defer loadedPromptsMu.RUnlock()
	return loadedPrompts
}

// setLoadedPrompts replaces the loaded prompt state
func setLoadedPrompts(all AllLoadedPrompts) {
	loadedPromptsMu.Lock()
	defer loadedPromptsMu.Unlock()
	loadedPrompts = all
}
