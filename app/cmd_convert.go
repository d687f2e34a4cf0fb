package app

import (
	"encoding/json"
	"io"
	"os"

	"github.com/a7medJamal/gml/pkg/gml"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	file   string
	pretty bool
)

func NewCmdConvert(out io.Writer, config *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a GML geometry document to GeoJSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doConvert(out, config)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "GML document ('-' for stdin)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the GeoJSON output")

	return cmd
}

func doConvert(out io.Writer, config *Config) error {
	var in io.Reader
	switch file {
	case "":
		return errors.New("parameter empty")
	case "-":
		in = os.Stdin
	default:
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrap(err, "cannot read file")
		}
		defer f.Close()
		in = f
	}

	opts := gml.ParseOptions{
		Namespace:        config.Parser.Namespace,
		MaxDepth:         config.Parser.MaxDepth,
		ValidateGeometry: config.Parser.ValidateGeometry,
	}
	logrus.WithFields(logrus.Fields{
		"file":      file,
		"namespace": opts.Namespace,
	}).Debug("Decoding GML document")

	g, err := gml.NewParser().ReadWithOptions(in, opts)
	if err != nil {
		return errors.Wrap(err, "decoding GML")
	}
	logrus.WithField("type", g.Type().String()).Info("Geometry decoded")

	enc := json.NewEncoder(out)
	if pretty || config.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return errors.Wrap(enc.Encode(g), "encoding GeoJSON")
}
