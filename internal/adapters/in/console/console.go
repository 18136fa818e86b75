// Package console is the interactive driving adapter: a numbered menu over
// standard input and output that translates operator entries into commands
// and queries. Rendering helpers and input validators are pure functions so
// the dialogue flow can be tested with plain readers and buffers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"counter/internal/core/application/usecases/commands"
	"counter/internal/core/application/usecases/queries"
	"counter/internal/core/domain/model/kernel"
	"counter/internal/core/domain/model/order"
	"counter/internal/pkg/errs"
)

// Console is the interactive front end: a line-based prompt/response loop
// over one input source and one output sink. All operator-facing system
// messages are prefixed "=> " to distinguish them from prompts.
//
// Recoverable input errors (bad price, bad quantity, bad selection) re-issue
// the same prompt; validation failures abort the operation cleanly with no
// mutation; storage errors are returned to the caller and end the session.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger

	addOrder        commands.AddOrderCommandHandler
	fulfillOrder    commands.FulfillOrderCommandHandler
	pendingOrders   queries.GetPendingOrdersQueryHandler
	fulfilledOrders queries.GetFulfilledOrdersQueryHandler

	bannerStyle  lipgloss.Style
	messageStyle lipgloss.Style
	failureStyle lipgloss.Style
}

// NewConsole creates a console bound to the given input source and output
// sink. Styling degrades to plain text when the sink is not a terminal, so
// tests observe the exact report contract.
func NewConsole(
	in io.Reader,
	out io.Writer,
	addOrder commands.AddOrderCommandHandler,
	fulfillOrder commands.FulfillOrderCommandHandler,
	pendingOrders queries.GetPendingOrdersQueryHandler,
	fulfilledOrders queries.GetFulfilledOrdersQueryHandler,
	logger *slog.Logger,
) *Console {
	if logger == nil {
		logger = slog.Default()
	}

	renderer := lipgloss.NewRenderer(out)
	return &Console{
		scanner:         bufio.NewScanner(in),
		out:             out,
		logger:          logger,
		addOrder:        addOrder,
		fulfillOrder:    fulfillOrder,
		pendingOrders:   pendingOrders,
		fulfilledOrders: fulfilledOrders,
		bannerStyle:     renderer.NewStyle().Bold(true),
		messageStyle:    renderer.NewStyle().Foreground(lipgloss.Color("10")),
		failureStyle:    renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Run drives the menu loop until the operator exits, input ends, or a
// storage error occurs.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printMenu()
		choice, ok := c.readLine("Choose an option (Enter to exit): ")
		if !ok {
			return nil
		}

		switch choice {
		case "":
			return nil
		case "1":
			if err := c.handleAdd(ctx); err != nil {
				return err
			}
		case "2":
			if err := c.handleReport(ctx); err != nil {
				return err
			}
		case "3":
			if err := c.handleFulfill(ctx); err != nil {
				return err
			}
		case "4":
			return nil
		default:
			c.fail("Please enter a valid option (1-4)")
		}
	}
}

func (c *Console) printMenu() {
	stars := "***************"
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.bannerStyle.Render(stars+" Menu "+stars))
	fmt.Fprintln(c.out, "1. Add order")
	fmt.Fprintln(c.out, "2. Show order report")
	fmt.Fprintln(c.out, "3. Fulfill order")
	fmt.Fprintln(c.out, "4. Exit")
	fmt.Fprintln(c.out, c.bannerStyle.Render(stars+"*******"+stars))
}

// handleAdd runs the interactive add-order dialogue: order id, customer,
// then item entries until an empty item name. The duplicate-id check runs
// before the customer prompt, and the empty-order check runs before any
// mutation, so a failed add never touches the pending collection.
func (c *Console) handleAdd(ctx context.Context) error {
	rawID, ok := c.readLine("Enter order ID: ")
	if !ok {
		return nil
	}

	id, err := kernel.NewOrderID(rawID)
	if err != nil {
		c.fail("Error: order ID is required")
		return nil
	}

	pending, err := c.pendingOrders.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return err
	}
	for _, existing := range pending {
		if existing.ID == id.String() {
			c.fail("Error: order %s already exists", id)
			return nil
		}
	}

	customer, ok := c.readLine("Enter customer name: ")
	if !ok {
		return nil
	}

	items, ok := c.readItems()
	if !ok {
		return nil
	}
	if len(items) == 0 {
		c.fail("An order needs at least one item")
		return nil
	}

	cmd, err := commands.NewAddOrderCommand(id, customer, items)
	if err != nil {
		c.fail("Error: %s", err)
		return nil
	}

	if err = c.addOrder.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			c.fail("Error: order %s already exists", id)
			return nil
		}
		return err
	}

	c.logger.Debug("order added", "order_id", id.String(), "items", len(items))
	c.say("Order %s added", id)
	return nil
}

// readItems collects item entries until the operator supplies an empty item
// name. Price and quantity re-prompt until valid. The second return value is
// false when input ended.
func (c *Console) readItems() ([]order.Item, bool) {
	var items []order.Item
	for {
		name, ok := c.readLine("Enter item name (press Enter to finish): ")
		if !ok {
			return nil, false
		}
		if name == "" {
			return items, true
		}

		price, ok := c.promptNumber("Enter price: ", ParsePrice)
		if !ok {
			return nil, false
		}

		quantity, ok := c.promptNumber("Enter quantity: ", ParseQuantity)
		if !ok {
			return nil, false
		}

		item, err := order.NewItem(name, price, quantity)
		if err != nil {
			c.fail("Error: %s", err)
			continue
		}
		items = append(items, item)
	}
}

// promptNumber re-issues the prompt until parse accepts the entry.
// Returns false when input ended.
func (c *Console) promptNumber(prompt string, parse func(string) (int, error)) (int, bool) {
	for {
		raw, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}

		value, err := parse(raw)
		if err != nil {
			c.fail("Error: %s, please try again", err)
			continue
		}
		return value, true
	}
}

func (c *Console) handleReport(ctx context.Context) error {
	pending, err := c.pendingOrders.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, RenderReport(pending, "Order Report", false))
	return nil
}

// handleFulfill lists the pending orders, reads a 1-based selection, moves
// the chosen order to the fulfilled log, and prints it as a single-order
// report. Empty input cancels; bad input re-prompts.
func (c *Console) handleFulfill(ctx context.Context) error {
	pending, err := c.pendingOrders.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, RenderPendingList(pending))

	for {
		raw, ok := c.readLine("Select the order to fulfill (number or Enter to cancel): ")
		if !ok || raw == "" {
			return nil
		}

		selection, parseErr := ParseSelection(raw, len(pending))
		if parseErr != nil {
			c.fail("Error: %s", parseErr)
			continue
		}

		cmd, cmdErr := commands.NewFulfillOrderCommand(selection)
		if cmdErr != nil {
			c.fail("Error: %s", ErrSelectionInvalid)
			continue
		}

		fulfilled, handleErr := c.fulfillOrder.Handle(ctx, cmd)
		if handleErr != nil {
			if errors.Is(handleErr, errs.ErrValueIsOutOfRange) {
				c.fail("Error: %s", ErrSelectionInvalid)
				continue
			}
			return handleErr
		}

		c.logger.Debug("order fulfilled", "order_id", fulfilled.ID().String())
		c.say("Order %s fulfilled", fulfilled.ID())

		log, logErr := c.fulfilledOrders.Handle(ctx, queries.NewGetFulfilledOrdersQuery())
		if logErr != nil {
			return logErr
		}
		fmt.Fprintln(c.out)
		fmt.Fprint(c.out, RenderReport(log[len(log)-1:], "Fulfilled Order", true))
		return nil
	}
}

// readLine prints the prompt and reads one input line.
// The second return value is false when input ended.
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

func (c *Console) say(format string, args ...any) {
	fmt.Fprintln(c.out, c.messageStyle.Render("=> "+fmt.Sprintf(format, args...)))
}

func (c *Console) fail(format string, args ...any) {
	fmt.Fprintln(c.out, c.failureStyle.Render("=> "+fmt.Sprintf(format, args...)))
}
