package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"agent-wallet-console/config"
	"agent-wallet-console/internal/adapter/backend"
	"agent-wallet-console/internal/adapter/stripeproc"
	"agent-wallet-console/internal/core/domain"
	"agent-wallet-console/internal/core/ports"
	"agent-wallet-console/internal/service"
	"agent-wallet-console/internal/transcript"
	"agent-wallet-console/pkg/apperror"
	"agent-wallet-console/pkg/logger"
)

const banner = `Agent Wallet Console
Type a command, or /help for the console commands.`

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger. Logs go to stderr; stdout belongs to the transcript.
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("backend", cfg.Backend.URL).
		Str("default_model", cfg.Console.DefaultModel).
		Msg("Starting Agent Wallet Console")

	// Adapters
	backendClient := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, log)
	processor := stripeproc.New(cfg.Processor.BaseURL, cfg.Processor.PublishableKey, cfg.Processor.Timeout, log)

	// Core services
	walletSvc := service.NewWalletService(backendClient, log)
	creditSvc := service.NewCreditService(backendClient, log)
	paymentSvc := service.NewPaymentService(backendClient, processor, creditSvc, log)
	dispatcherSvc := service.NewDispatcherService(backendClient, walletSvc, cfg.Console.DefaultModel, log)

	// Transcript feeds stdout as lines are released
	transcriptLog := transcript.New()
	transcriptLog.Subscribe(func(line string) {
		fmt.Println(line)
	})

	sessionSvc := service.NewSessionService(dispatcherSvc, walletSvc, creditSvc, paymentSvc, transcriptLog, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println(banner)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Exiting.")
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				log.Error().Err(err).Msg("stdin read failed")
			}
			fmt.Println("Exiting.")
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := runConsoleCommand(ctx, sessionSvc, line); quit {
				return
			}
			continue
		}

		if err := sessionSvc.Submit(ctx, line); err != nil {
			fmt.Println("Error: " + apperror.Display(err))
		}
	}
}

// runConsoleCommand handles the slash commands that manage the session
// itself rather than dispatching to the agent. Returns true on /exit.
func runConsoleCommand(ctx context.Context, session *service.SessionServiceImpl, line string) bool {
	fields := strings.Fields(line)
	command := strings.ToLower(fields[0])

	switch command {
	case "/help":
		printHelp()

	case "/connect":
		if len(fields) < 2 {
			fmt.Println("Usage: /connect <address>")
			return false
		}
		address := fields[1]
		if !domain.ValidRecipient(address) {
			fmt.Println("Error: invalid address")
			return false
		}
		if err := session.Connect(ctx, address); err != nil {
			fmt.Println("Error: " + apperror.Display(err))
			return false
		}
		fmt.Printf("Connected: %s\n", address)
		printStatus(session)

	case "/disconnect":
		session.Disconnect()
		fmt.Println("Disconnected.")

	case "/status":
		printStatus(session)

	case "/create_wallet":
		if err := session.CreateWallet(ctx); err != nil {
			// The failure line is already in the transcript.
			return false
		}

	case "/buy_credits":
		method, amount, err := parseBuyCredits(fields)
		if err != nil {
			fmt.Println(err.Error())
			return false
		}
		// The success or failure line lands in the transcript.
		_ = session.BuyCredits(ctx, amount, method)

	case "/cancel_payment":
		session.CancelPayment()
		fmt.Println("Payment session cancelled.")

	case "/exit", "/quit":
		fmt.Println("Exiting.")
		return true

	default:
		fmt.Printf("Unknown console command %q. Try /help.\n", command)
	}
	return false
}

func parseBuyCredits(fields []string) (ports.PaymentMethod, int, error) {
	usage := fmt.Errorf("Usage: /buy_credits <amount> <card_number> <exp_month> <exp_year> <cvc>")
	if len(fields) != 6 {
		return ports.PaymentMethod{}, 0, usage
	}
	amount, err := strconv.Atoi(fields[1])
	if err != nil {
		return ports.PaymentMethod{}, 0, usage
	}
	expMonth, err := strconv.Atoi(fields[3])
	if err != nil {
		return ports.PaymentMethod{}, 0, usage
	}
	expYear, err := strconv.Atoi(fields[4])
	if err != nil {
		return ports.PaymentMethod{}, 0, usage
	}
	return ports.PaymentMethod{
		CardNumber: fields[2],
		ExpMonth:   expMonth,
		ExpYear:    expYear,
		CVC:        fields[5],
	}, amount, nil
}

func printStatus(session *service.SessionServiceImpl) {
	identity := session.Identity()
	if identity == "" {
		fmt.Println("Not connected.")
		return
	}
	fmt.Printf("Address: %s\n", identity)
	fmt.Printf("Credits: %d\n", session.Credits())

	wallet := session.Wallet()
	switch wallet.Status {
	case domain.WalletStatusExists:
		fmt.Printf("AA Wallet: %s\n", wallet.Address)
	case domain.WalletStatusNotExists:
		fmt.Println("AA Wallet: not created (/create_wallet)")
	default:
		fmt.Println("AA Wallet: loading...")
	}

	if payment := session.PaymentSession(); payment != nil {
		fmt.Printf("Payment: %s", payment.Phase)
		if payment.FailureReason != "" {
			fmt.Printf(" (%s)", payment.FailureReason)
		}
		fmt.Println()
	}
}

func printHelp() {
	fmt.Println(`Console commands:
  /connect <address>      connect an identity
  /disconnect             drop the identity and clear the transcript
  /status                 show address, credits, wallet and payment state
  /create_wallet          provision the AA wallet
  /buy_credits <amount> <card_number> <exp_month> <exp_year> <cvc>
  /cancel_payment         drop the current payment session
  /exit                   leave the console

Agent commands:
  ` + domain.UsageHint)
}
