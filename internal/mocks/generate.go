package mocks

//go:generate mockery --name RecordStore --srcpkg github.com/storepulse/storepulse/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
