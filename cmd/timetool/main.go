package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"timeclash/internal/models"
	"timeclash/internal/service"
	"timeclash/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	// Define subcommands
	convertCmd := flag.NewFlagSet("convert", flag.ExitOnError)
	quizCmd := flag.NewFlagSet("quiz", flag.ExitOnError)
	tableCmd := flag.NewFlagSet("table", flag.ExitOnError)

	// Convert flags
	convertUnit := convertCmd.String("unit", "seconds", "Unit of the value: seconds, minutes or hours")
	convertValue := convertCmd.String("value", "", "Value to convert")

	// Quiz flags
	quizRounds := quizCmd.Int("rounds", 5, "Number of questions to ask")
	quizSeed := quizCmd.Uint64("seed", 0, "Random seed for a repeatable quiz (0 = random)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "convert":
		convertCmd.Parse(os.Args[2:])
		if err := runConvert(os.Stdout, *convertUnit, *convertValue); err != nil {
			fmt.Printf("Error: %v\n", err)
			convertCmd.PrintDefaults()
			os.Exit(1)
		}

	case "quiz":
		quizCmd.Parse(os.Args[2:])
		if err := utils.ValidatePositive("rounds", *quizRounds); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		var rng service.RandomSource
		if *quizSeed != 0 {
			rng = service.NewSeededSource(*quizSeed)
		}
		if _, err := runQuiz(service.NewQuizService(rng), os.Stdin, os.Stdout, *quizRounds); err != nil {
			log.Fatalf("Quiz failed: %v", err)
		}

	case "table":
		tableCmd.Parse(os.Args[2:])
		printKnowledge(os.Stdout, service.KnowledgePanel())

	default:
		printUsage()
		os.Exit(1)
	}
}

func runConvert(out io.Writer, unit, value string) error {
	v, err := service.Convert(unit, value)
	if err != nil {
		return err
	}
	for _, u := range models.Units {
		fmt.Fprintf(out, "%-8s %s\n", u, utils.FormatNumber(v.Value(u)))
	}
	return nil
}

// runQuiz asks rounds questions read from in. A blank line skips the
// question without grading it and "q" ends the quiz early.
func runQuiz(quiz *service.QuizService, in io.Reader, out io.Writer, rounds int) (models.QuizSession, error) {
	scanner := bufio.NewScanner(in)
	session := models.QuizSession{}

	for round := 1; round <= rounds; round++ {
		session = quiz.StartNewQuestion(session)
		fmt.Fprintf(out, "[%d/%d] %s\n> ", round, rounds, session.CurrentQuestion.Prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return session, fmt.Errorf("failed to read answer: %w", err)
			}
			fmt.Fprintln(out)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			break
		}

		var feedback *models.Feedback
		session, feedback = quiz.SubmitAnswer(session, line)
		if feedback == nil {
			fmt.Fprintf(out, "Skipped. The answer was %s.\n", utils.FormatNumber(session.CurrentQuestion.CorrectAnswer))
			continue
		}
		fmt.Fprintln(out, feedback.Explanation)
	}

	printScore(out, session)
	return session, nil
}

func printScore(out io.Writer, session models.QuizSession) {
	fmt.Fprintf(out, "Correct: %d | Answered: %d", session.Score, session.QuestionsAnswered)
	if pct, ok := session.AccuracyPercent(); ok {
		fmt.Fprintf(out, " | Accuracy: %d%%", pct)
	}
	fmt.Fprintln(out)
}

func printKnowledge(out io.Writer, panel models.KnowledgePanel) {
	fmt.Fprintln(out, "Conversions")
	for _, e := range panel.Equivalences {
		fmt.Fprintf(out, "  %s = %s\n", e.Left, e.Right)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Memory aids")
	for _, m := range panel.Mnemonics {
		fmt.Fprintf(out, "  %q: %s\n", m.Phrase, m.Meaning)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Everyday examples")
	for _, ex := range panel.Examples {
		fmt.Fprintf(out, "  %s: %s\n", ex.Activity, ex.Text())
	}
}

func printUsage() {
	fmt.Println("TimeClash Time Conversion Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  timetool convert [options]    Convert a value between seconds, minutes and hours")
	fmt.Println("  timetool quiz [options]       Practice conversions in the terminal")
	fmt.Println("  timetool table                Print the conversion reference")
	fmt.Println()
	fmt.Println("Convert Options:")
	fmt.Println("  -unit <unit>      seconds, minutes or hours (default: seconds)")
	fmt.Println("  -value <number>   Value to convert")
	fmt.Println()
	fmt.Println("Quiz Options:")
	fmt.Println("  -rounds <n>       Number of questions (default: 5)")
	fmt.Println("  -seed <n>         Repeatable question order")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  timetool convert -unit hours -value 1.5")
	fmt.Println("  timetool quiz -rounds 10")
}
