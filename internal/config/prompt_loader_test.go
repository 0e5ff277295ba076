package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadPromptsFromFiles(t *testing.T) {
	tempDir := t.TempDir()

	systemPromptContent := "Test system prompt for resume analysis"
	userPromptContent := "Test user prompt template: %s and %s"

	systemPromptFile := filepath.Join(tempDir, "system.analyze.md")
	userPromptFile := filepath.Join(tempDir, "user.analyze.md")

	if err := os.WriteFile(systemPromptFile, []byte(systemPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test system prompt file: %v", err)
	}

	if err := os.WriteFile(userPromptFile, []byte(userPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test user prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Analyze: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						AnalyzeResumeFile: systemPromptFile,
					},
					UserPrompts: UserPrompts{
						AnalyzeResumeFile: userPromptFile,
					},
				},
			},
		},
	}

	err := config.loadPromptsFromFiles()
	if err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	// Verify content was loaded into the global prompt store
	loadedOps := GetPromptsForOperation("analyze")

	if loadedOps.SystemPrompts.AnalyzeResume != systemPromptContent {
		t.Errorf("Expected loaded system prompt content '%s', got '%s'",
			systemPromptContent, loadedOps.SystemPrompts.AnalyzeResume)
	}

	if loadedOps.UserPrompts.AnalyzeResume != userPromptContent {
		t.Errorf("Expected loaded user prompt content '%s', got '%s'",
			userPromptContent, loadedOps.UserPrompts.AnalyzeResume)
	}

	// Verify file paths are preserved (immutable config design)
	if config.AI.Analyze.CustomPrompts.SystemPrompts.AnalyzeResumeFile != systemPromptFile {
		t.Error("Expected system prompt file path to be preserved")
	}

	if config.AI.Analyze.CustomPrompts.UserPrompts.AnalyzeResumeFile != userPromptFile {
		t.Error("Expected user prompt file path to be preserved")
	}
}

func TestValidatePromptFiles(t *testing.T) {
	tempDir := t.TempDir()

	validFile := filepath.Join(tempDir, "valid.md")
	if err := os.WriteFile(validFile, []byte("Valid content"), 0600); err != nil {
		t.Fatalf("Failed to create valid test file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Analyze: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						AnalyzeResumeFile: validFile,
					},
				},
			},
		},
	}

	err := config.validatePromptFiles()
	if err != nil {
		t.Errorf("Expected validation to pass for valid file, got error: %v", err)
	}

	// Non-existent file fails validation
	config.AI.Analyze.CustomPrompts.SystemPrompts.AnalyzeResumeFile = filepath.Join(tempDir, "nonexistent.md")

	err = config.validatePromptFiles()
	if err == nil {
		t.Error("Expected validation to fail for non-existent file")
	}
}

func TestLoadPromptFromFile(t *testing.T) {
	tempDir := t.TempDir()

	content := "Test prompt content"
	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	config := &Config{}
	loadedContent, err := config.loadPromptFromFile(testFile, "system", "analyzeResume")
	if err != nil {
		t.Fatalf("Failed to load prompt from file: %v", err)
	}

	if loadedContent != content {
		t.Errorf("Expected content '%s', got '%s'", content, loadedContent)
	}

	// Empty file is rejected
	emptyFile := filepath.Join(tempDir, "empty.md")
	if err := os.WriteFile(emptyFile, []byte(""), 0600); err != nil {
		t.Fatalf("Failed to create empty test file: %v", err)
	}

	_, err = config.loadPromptFromFile(emptyFile, "system", "analyzeResume")
	if err == nil {
		t.Error("Expected error for empty file")
	}

	// Missing file is rejected
	_, err = config.loadPromptFromFile(filepath.Join(tempDir, "nonexistent.md"), "system", "analyzeResume")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestGlobalPromptFallback(t *testing.T) {
	tempDir := t.TempDir()

	globalSystem := "Global system prompt"
	globalFile := filepath.Join(tempDir, "global-system.md")
	if err := os.WriteFile(globalFile, []byte(globalSystem), 0600); err != nil {
		t.Fatalf("Failed to create global prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			CustomPrompts: PromptConfig{
				SystemPrompts: SystemPrompts{
					AnalyzeResumeFile: globalFile,
				},
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	// Unknown operation types fall back to the global prompts
	global := GetPromptsForOperation("unknown")
	if global.SystemPrompts.AnalyzeResume != globalSystem {
		t.Errorf("Expected global system prompt '%s', got '%s'",
			globalSystem, global.SystemPrompts.AnalyzeResume)
	}
}

func TestPromptFilePaths(t *testing.T) {
	config := &Config{
		AI: AIConfig{
			CustomPrompts: PromptConfig{
				SystemPrompts: SystemPrompts{AnalyzeResumeFile: "/prompts/system.md"},
				UserPrompts:   UserPrompts{AnalyzeResumeFile: "/prompts/user.md"},
			},
			Analyze: OperationAIConfig{
				CustomPrompts: PromptConfig{
					// Same path as the global system prompt, should be deduplicated
					SystemPrompts: SystemPrompts{AnalyzeResumeFile: "/prompts/system.md"},
				},
			},
		},
	}

	paths := config.promptFilePaths()
	if len(paths) != 2 {
		t.Fatalf("Expected 2 deduplicated paths, got %d: %v", len(paths), paths)
	}
	if paths[0] != "/prompts/system.md" || paths[1] != "/prompts/user.md" {
		t.Errorf("Unexpected paths: %v", paths)
	}
}

func TestPromptFileIntegration(t *testing.T) {
	tempDir := t.TempDir()

	systemPrompt := "Custom system prompt for testing"
	userPrompt := "Custom user prompt: %s %s"

	systemFile := filepath.Join(tempDir, "system.md")
	userFile := filepath.Join(tempDir, "user.md")

	if err := os.WriteFile(systemFile, []byte(systemPrompt), 0600); err != nil {
		t.Fatalf("Failed to create system prompt file: %v", err)
	}

	if err := os.WriteFile(userFile, []byte(userPrompt), 0600); err != nil {
		t.Fatalf("Failed to create user prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Mode:        "heuristic",
			Provider:    "gemini",
			Model:       "test-model",
			Timeout:     60 * time.Second,
			APIKey:      "test-key",
			MaxRetries:  3,
			Temperature: 0.7,
			Analyze: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						AnalyzeResumeFile: systemFile,
					},
					UserPrompts: UserPrompts{
						AnalyzeResumeFile: userFile,
					},
				},
			},
		},
		App: AppConfig{
			LogLevel:         "info",
			DefaultFormat:    "json",
			SupportedFormats: []string{"json", "text", "markdown"},
			MaxFileSize:      1024 * 1024,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8080",
		},
	}

	// Apply fallbacks (simulating the full config loading process)
	config.applyFallbacks()

	if err := config.validatePromptFiles(); err != nil {
		t.Fatalf("Prompt file validation failed: %v", err)
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	loadedOps := GetPromptsForOperation("analyze")

	if loadedOps.SystemPrompts.AnalyzeResume != systemPrompt {
		t.Errorf("Expected system prompt '%s', got '%s'",
			systemPrompt, loadedOps.SystemPrompts.AnalyzeResume)
	}

	if loadedOps.UserPrompts.AnalyzeResume != userPrompt {
		t.Errorf("Expected user prompt '%s', got '%s'",
			userPrompt, loadedOps.UserPrompts.AnalyzeResume)
	}

	if config.AI.Analyze.CustomPrompts.SystemPrompts.AnalyzeResumeFile != systemFile {
		t.Error("Expected system prompt file path to be preserved")
	}

	if config.AI.Analyze.CustomPrompts.UserPrompts.AnalyzeResumeFile != userFile {
		t.Error("Expected user prompt file path to be preserved")
	}
}
