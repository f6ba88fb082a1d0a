package dataset

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// SaveRecords writes records to a json file consumed by the model trainer.
// It refuses to overwrite an existing file so a long fetch can never
// clobber an earlier dataset by accident.
func SaveRecords(path string, records []Record) (err error) {

	if _, err = os.Stat(path); err == nil {
		return errors.Errorf("File %v already exists, won't overwrite it", path)
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}

	err = ioutil.WriteFile(path, data, 0644)
	if err != nil {
		return errors.Wrapf(err, "Failed writing dataset file %v", path)
	}

	log.Info().Msgf("Saved %v records to %v", len(records), path)

	return nil
}

// LoadRecords reads a dataset file written by SaveRecords.
func LoadRecords(path string) (records []Record, err error) {

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return records, errors.Wrapf(err, "Failed reading dataset file %v", path)
	}

	err = json.Unmarshal(data, &records)
	if err != nil {
		return records, errors.Wrapf(err, "Failed unmarshalling dataset file %v", path)
	}

	return records, nil
}
