package cmd

import (
	"github.com/etnz/balancesheet/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	global := make(map[string]complete.Predictor)
	for _, name := range globalFlags {
		global[name] = predict.Something
	}
	global["config"] = predict.Files("*.yml")
	global["import-dir"] = predict.Dirs("*")
	global["export-dir"] = predict.Dirs("*")
	global["v"] = predict.Nothing

	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"parse": {
				Flags: map[string]complete.Predictor{
					"f":        predict.Files("*.csv"),
					"w":        predict.Something,
					"s":        predict.Something,
					"o":        predict.Something,
					"markdown": predict.Nothing,
				},
			},
			"merge": {
				Flags: map[string]complete.Predictor{
					"w":        predict.Something,
					"o":        predict.Something,
					"markdown": predict.Nothing,
				},
				Args: predict.Files("*.csv"),
			},
			"shell": {
				Flags: map[string]complete.Predictor{"markdown": predict.Nothing},
			},
			"topic": {
				Args: predict.Set(topics),
			},
		},
	}
}
