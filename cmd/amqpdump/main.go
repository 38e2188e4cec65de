package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"

	amqpwire "github.com/engineer-legion/amqpwire"
)

type dumpCmd struct {
	File string `arg:"" help:"Wire fixture file to render." type:"existingfile"`
	JSON bool   `help:"Emit the JSON descriptor form instead of the canonical rendering."`
}

func (c *dumpCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	if c.JSON {
		out, err := amqpwire.ToJSON(data)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	d := amqpwire.NewDecoder(data)
	fmt.Println(d.String())
	if err := drain(d); err != nil {
		return err
	}
	return nil
}

// drain walks the whole buffer so malformed fixtures fail the command even
// though rendering stops at the first bad element.
func drain(d *amqpwire.Decoder) error {
	for d.More() {
		if err := d.Skip(); err != nil {
			return err
		}
	}
	return nil
}

type encodeCmd struct {
	Input  string `arg:"" help:"JSON descriptor file." type:"existingfile"`
	Output string `short:"o" help:"Output fixture file. Defaults to stdout as hex."`
}

func (c *encodeCmd) Run() error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	enc, err := amqpwire.FromJSON(data)
	if err != nil {
		return err
	}
	wire := enc.Encode()
	if c.Output == "" {
		fmt.Printf("%x\n", wire)
		return nil
	}
	return os.WriteFile(c.Output, wire, 0o644)
}

type verifyCmd struct {
	File string `arg:"" help:"Wire fixture file to round-trip." type:"existingfile"`
}

func (c *verifyCmd) Run() error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	d := amqpwire.NewDecoder(data)
	enc := amqpwire.AcquireEncoder()
	defer amqpwire.ReleaseEncoder(enc)
	count := 0
	for d.More() {
		v, err := d.ReadValue()
		if err != nil {
			return fmt.Errorf("element %d: %w", count, err)
		}
		if err := enc.WriteValue(v); err != nil {
			return fmt.Errorf("element %d: %w", count, err)
		}
		count++
	}
	out := enc.Encode()
	if !bytes.Equal(out, data) {
		return fmt.Errorf("re-encode mismatch: %d elements, %d bytes in, %d bytes out", count, len(data), len(out))
	}
	fmt.Printf("ok: %d elements, %d bytes\n", count, len(data))
	return nil
}

var cli struct {
	Dump   dumpCmd   `cmd:"" help:"Print the canonical rendering of a wire fixture."`
	Encode encodeCmd `cmd:"" help:"Encode a JSON descriptor file into wire bytes."`
	Verify verifyCmd `cmd:"" help:"Decode a fixture and re-encode it, checking byte equality."`
}

func main() {
	log.SetFlags(0)

	ctx := kong.Parse(&cli,
		kong.Name("amqpdump"),
		kong.Description("Inspect and author AMQP primitive scalar wire fixtures."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
