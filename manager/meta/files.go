package meta

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

func (sm *MetaManager) getAbsStoragePath(segments ...string) string {

	pathSegments := []string{sm.storagePath}
	pathSegments = append(pathSegments, segments...)

	return filepath.Join(pathSegments...)
}

func (sm *MetaManager) createStoragePathIfNotExists(segments ...string) (string, error) {
	storagePath := sm.getAbsStoragePath(segments...)

	if _, err := os.Stat(storagePath); err != nil {
		storageFolderErr := os.MkdirAll(storagePath, 0755)
		if storageFolderErr != nil {
			sm.logger.Error("unable to create directory", zap.String("path", storagePath), zap.Error(storageFolderErr))
			return "", storageFolderErr
		}

		sm.logger.Debug("storage folder created", zap.String("path", storagePath))
	}

	return storagePath, nil
}

// TablePath is the folder holding the schema and parts of a stored table
func (sm *MetaManager) TablePath(name string) string {
	return sm.getAbsStoragePath(name)
}

func (sm *MetaManager) EnsureTablePath(name string) (string, error) {
	return sm.createStoragePathIfNotExists(name)
}
