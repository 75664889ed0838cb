package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/ambrogio/internal/chat"
	"github.com/sadopc/ambrogio/internal/config"
	"github.com/sadopc/ambrogio/internal/llm"
)

func runREPL(ctx context.Context) error {
	llmCfg, err := config.LLMFromEnv()
	if err != nil {
		return err
	}
	path, err := config.FilePath()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read organiser file %s: %w", path, err)
	}

	manager := chat.NewManager(llm.NewClient(llmCfg), string(content))

	fmt.Println("Ambrogio - Your daily organiser assistant")
	fmt.Println("Type 'quit' or 'exit' to leave")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you: ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		}

		response, err := manager.Send(ctx, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			continue
		}
		fmt.Printf("\nambrogio: %s\n\n", response)
	}
}
