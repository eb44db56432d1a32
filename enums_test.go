package diligent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/diligent/driver"
)

func TestEnumsRoundTripNative(t *testing.T) {
	t.Run("ValueType", func(t *testing.T) {
		requireRoundTrip(t, valueTypeTable[:], 0, valueTypeFromNative, ValueType.native)
	})
	t.Run("Usage", func(t *testing.T) {
		requireRoundTrip(t, usageTable[:], 1, usageFromNative, Usage.native)
	})
	t.Run("BufferMode", func(t *testing.T) {
		requireRoundTrip(t, bufferModeTable[:], 0, bufferModeFromNative, BufferMode.native)
	})
	t.Run("BufferViewType", func(t *testing.T) {
		requireRoundTrip(t, bufferViewTypeTable[:], 0, bufferViewTypeFromNative, BufferViewType.native)
	})
	t.Run("TextureViewType", func(t *testing.T) {
		requireRoundTrip(t, textureViewTypeTable[:], 0, textureViewTypeFromNative, TextureViewType.native)
	})
	t.Run("ResourceDimension", func(t *testing.T) {
		requireRoundTrip(t, resourceDimensionTable[:], 0, resourceDimensionFromNative, ResourceDimension.native)
	})
	t.Run("TextureFormat", func(t *testing.T) {
		requireRoundTrip(t, textureFormatTable[:], 0, textureFormatFromNative, TextureFormat.native)
	})
	t.Run("TextureComponentSwizzle", func(t *testing.T) {
		requireRoundTrip(t, textureComponentSwizzleTable[:], 0, textureComponentSwizzleFromNative, TextureComponentSwizzle.native)
	})
	t.Run("FilterType", func(t *testing.T) {
		requireRoundTrip(t, filterTypeTable[:], 0, filterTypeFromNative, FilterType.native)
	})
	t.Run("TextureAddressMode", func(t *testing.T) {
		requireRoundTrip(t, textureAddressModeTable[:], 0, textureAddressModeFromNative, TextureAddressMode.native)
	})
	t.Run("ComparisonFunction", func(t *testing.T) {
		requireRoundTrip(t, comparisonFunctionTable[:], 0, comparisonFunctionFromNative, ComparisonFunction.native)
	})
	t.Run("ComponentType", func(t *testing.T) {
		requireRoundTrip(t, componentTypeTable[:], 0, componentTypeFromNative, ComponentType.native)
	})
	t.Run("DeviceMemoryType", func(t *testing.T) {
		requireRoundTrip(t, deviceMemoryTypeTable[:], 0, deviceMemoryTypeFromNative, DeviceMemoryType.native)
	})
	t.Run("ShaderSourceLanguage", func(t *testing.T) {
		requireRoundTrip(t, shaderSourceLanguageTable[:], 0, shaderSourceLanguageFromNative, ShaderSourceLanguage.native)
	})
	t.Run("ShaderCompiler", func(t *testing.T) {
		requireRoundTrip(t, shaderCompilerTable[:], 0, shaderCompilerFromNative, ShaderCompiler.native)
	})
	t.Run("ShaderStatus", func(t *testing.T) {
		requireRoundTrip(t, shaderStatusTable[:], 0, shaderStatusFromNative, ShaderStatus.native)
	})
	t.Run("ShaderResourceType", func(t *testing.T) {
		requireRoundTrip(t, shaderResourceTypeTable[:], 0, shaderResourceTypeFromNative, ShaderResourceType.native)
	})
	t.Run("ShaderResourceVariableType", func(t *testing.T) {
		requireRoundTrip(t, shaderResourceVariableTypeTable[:], 0, shaderResourceVariableTypeFromNative, ShaderResourceVariableType.native)
	})
	t.Run("ShaderCodeVariableClass", func(t *testing.T) {
		requireRoundTrip(t, shaderCodeVariableClassTable[:], 0, shaderCodeVariableClassFromNative, ShaderCodeVariableClass.native)
	})
	t.Run("ShaderCodeBasicType", func(t *testing.T) {
		requireRoundTrip(t, shaderCodeBasicTypeTable[:], 0, shaderCodeBasicTypeFromNative, ShaderCodeBasicType.native)
	})
	t.Run("PipelineType", func(t *testing.T) {
		requireRoundTrip(t, pipelineTypeTable[:], 0, pipelineTypeFromNative, PipelineType.native)
	})
	t.Run("PipelineStateStatus", func(t *testing.T) {
		requireRoundTrip(t, pipelineStateStatusTable[:], 0, pipelineStateStatusFromNative, PipelineStateStatus.native)
	})
	t.Run("PrimitiveTopology", func(t *testing.T) {
		requireRoundTrip(t, primitiveTopologyTable[:], 0, primitiveTopologyFromNative, PrimitiveTopology.native)
	})
	t.Run("FillMode", func(t *testing.T) {
		requireRoundTrip(t, fillModeTable[:], 0, fillModeFromNative, FillMode.native)
	})
	t.Run("CullMode", func(t *testing.T) {
		requireRoundTrip(t, cullModeTable[:], 0, cullModeFromNative, CullMode.native)
	})
	t.Run("BlendFactor", func(t *testing.T) {
		requireRoundTrip(t, blendFactorTable[:], 0, blendFactorFromNative, BlendFactor.native)
	})
	t.Run("BlendOperation", func(t *testing.T) {
		requireRoundTrip(t, blendOperationTable[:], 0, blendOperationFromNative, BlendOperation.native)
	})
	t.Run("LogicOperation", func(t *testing.T) {
		requireRoundTrip(t, logicOperationTable[:], 1, logicOperationFromNative, LogicOperation.native)
	})
	t.Run("StencilOp", func(t *testing.T) {
		requireRoundTrip(t, stencilOpTable[:], 0, stencilOpFromNative, StencilOp.native)
	})
	t.Run("InputElementFrequency", func(t *testing.T) {
		requireRoundTrip(t, inputElementFrequencyTable[:], 0, inputElementFrequencyFromNative, InputElementFrequency.native)
	})
	t.Run("ShadingRate", func(t *testing.T) {
		requireRoundTrip(t, shadingRateTable[:], 0, shadingRateFromNative, ShadingRate.native)
	})
	t.Run("AttachmentLoadOp", func(t *testing.T) {
		requireRoundTrip(t, attachmentLoadOpTable[:], 0, attachmentLoadOpFromNative, AttachmentLoadOp.native)
	})
	t.Run("AttachmentStoreOp", func(t *testing.T) {
		requireRoundTrip(t, attachmentStoreOpTable[:], 0, attachmentStoreOpFromNative, AttachmentStoreOp.native)
	})
	t.Run("ResourceStateTransitionMode", func(t *testing.T) {
		requireRoundTrip(t, resourceStateTransitionModeTable[:], 0, resourceStateTransitionModeFromNative, ResourceStateTransitionMode.native)
	})
	t.Run("StateTransitionType", func(t *testing.T) {
		requireRoundTrip(t, stateTransitionTypeTable[:], 0, stateTransitionTypeFromNative, StateTransitionType.native)
	})
	t.Run("QueryType", func(t *testing.T) {
		requireRoundTrip(t, queryTypeTable[:], 0, queryTypeFromNative, QueryType.native)
	})
	t.Run("FenceType", func(t *testing.T) {
		requireRoundTrip(t, fenceTypeTable[:], 0, fenceTypeFromNative, FenceType.native)
	})
	t.Run("HitGroupBindingMode", func(t *testing.T) {
		requireRoundTrip(t, hitGroupBindingModeTable[:], 0, hitGroupBindingModeFromNative, HitGroupBindingMode.native)
	})
	t.Run("CopyASMode", func(t *testing.T) {
		requireRoundTrip(t, copyASModeTable[:], 0, copyASModeFromNative, CopyASMode.native)
	})
	t.Run("RenderDeviceType", func(t *testing.T) {
		requireRoundTrip(t, renderDeviceTypeTable[:], 0, renderDeviceTypeFromNative, RenderDeviceType.native)
	})
	t.Run("AdapterType", func(t *testing.T) {
		requireRoundTrip(t, adapterTypeTable[:], 0, adapterTypeFromNative, AdapterType.native)
	})
	t.Run("AdapterVendor", func(t *testing.T) {
		requireRoundTrip(t, adapterVendorTable[:], 0, adapterVendorFromNative, AdapterVendor.native)
	})
	t.Run("QueuePriority", func(t *testing.T) {
		requireRoundTrip(t, queuePriorityTable[:], 0, queuePriorityFromNative, QueuePriority.native)
	})
	t.Run("DebugMessageSeverity", func(t *testing.T) {
		requireRoundTrip(t, debugMessageSeverityTable[:], 0, debugMessageSeverityFromNative, DebugMessageSeverity.native)
	})
	t.Run("DeviceFeatureState", func(t *testing.T) {
		requireRoundTrip(t, deviceFeatureStateTable[:], 0, deviceFeatureStateFromNative, DeviceFeatureState.native)
	})
	t.Run("SurfaceTransform", func(t *testing.T) {
		requireRoundTrip(t, surfaceTransformTable[:], 0, surfaceTransformFromNative, SurfaceTransform.native)
	})
	t.Run("ScalingMode", func(t *testing.T) {
		requireRoundTrip(t, scalingModeTable[:], 0, scalingModeFromNative, ScalingMode.native)
	})
	t.Run("ScanlineOrder", func(t *testing.T) {
		requireRoundTrip(t, scanlineOrderTable[:], 0, scanlineOrderFromNative, ScanlineOrder.native)
	})
}

func TestFlagsMatchNative(t *testing.T) {
	t.Run("BindFlags", func(t *testing.T) {
		require.Equal(t, driver.BindNone, BindNone.native())
		require.Equal(t, driver.BindVertexBuffer, BindVertexBuffer.native())
		require.Equal(t, driver.BindIndexBuffer, BindIndexBuffer.native())
		require.Equal(t, driver.BindUniformBuffer, BindUniformBuffer.native())
		require.Equal(t, driver.BindShaderResource, BindShaderResource.native())
		require.Equal(t, driver.BindStreamOutput, BindStreamOutput.native())
		require.Equal(t, driver.BindRenderTarget, BindRenderTarget.native())
		require.Equal(t, driver.BindDepthStencil, BindDepthStencil.native())
		require.Equal(t, driver.BindUnorderedAccess, BindUnorderedAccess.native())
		require.Equal(t, driver.BindIndirectDrawArgs, BindIndirectDrawArgs.native())
		require.Equal(t, driver.BindInputAttachment, BindInputAttachment.native())
		require.Equal(t, driver.BindRayTracing, BindRayTracing.native())
		require.Equal(t, driver.BindShadingRate, BindShadingRate.native())
		require.Equal(t, driver.BindVertexBuffer|driver.BindIndexBuffer, (BindVertexBuffer | BindIndexBuffer).native())
	})
	t.Run("CpuAccessFlags", func(t *testing.T) {
		require.Equal(t, driver.CpuAccessNone, CpuAccessNone.native())
		require.Equal(t, driver.CpuAccessRead, CpuAccessRead.native())
		require.Equal(t, driver.CpuAccessWrite, CpuAccessWrite.native())
		require.Equal(t, driver.CpuAccessRead|driver.CpuAccessWrite, (CpuAccessRead | CpuAccessWrite).native())
	})
	t.Run("MiscBufferFlags", func(t *testing.T) {
		require.Equal(t, driver.MiscBufferFlagNone, MiscBufferFlagNone.native())
		require.Equal(t, driver.MiscBufferFlagSparseAliasing, MiscBufferFlagSparseAliasing.native())
	})
	t.Run("MiscTextureFlags", func(t *testing.T) {
		require.Equal(t, driver.MiscTextureFlagNone, MiscTextureFlagNone.native())
		require.Equal(t, driver.MiscTextureFlagGenerateMips, MiscTextureFlagGenerateMips.native())
		require.Equal(t, driver.MiscTextureFlagMemoryless, MiscTextureFlagMemoryless.native())
		require.Equal(t, driver.MiscTextureFlagSparseAliasing, MiscTextureFlagSparseAliasing.native())
		require.Equal(t, driver.MiscTextureFlagSubsampled, MiscTextureFlagSubsampled.native())
		require.Equal(t, driver.MiscTextureFlagGenerateMips|driver.MiscTextureFlagMemoryless, (MiscTextureFlagGenerateMips | MiscTextureFlagMemoryless).native())
	})
	t.Run("UavAccessFlag", func(t *testing.T) {
		require.Equal(t, driver.UavAccessFlagUnspecified, UavAccessFlagUnspecified.native())
		require.Equal(t, driver.UavAccessFlagRead, UavAccessFlagRead.native())
		require.Equal(t, driver.UavAccessFlagWrite, UavAccessFlagWrite.native())
		require.Equal(t, driver.UavAccessFlagReadWrite, UavAccessFlagReadWrite.native())
		require.Equal(t, driver.UavAccessFlagRead|driver.UavAccessFlagWrite, (UavAccessFlagRead | UavAccessFlagWrite).native())
	})
	t.Run("TextureViewFlags", func(t *testing.T) {
		require.Equal(t, driver.TextureViewFlagNone, TextureViewFlagNone.native())
		require.Equal(t, driver.TextureViewFlagAllowMipMapGeneration, TextureViewFlagAllowMipMapGeneration.native())
	})
	t.Run("SamplerFlags", func(t *testing.T) {
		require.Equal(t, driver.SamplerFlagNone, SamplerFlagNone.native())
		require.Equal(t, driver.SamplerFlagSubsampled, SamplerFlagSubsampled.native())
		require.Equal(t, driver.SamplerFlagSubsampledCoarseReconstruction, SamplerFlagSubsampledCoarseReconstruction.native())
		require.Equal(t, driver.SamplerFlagSubsampled|driver.SamplerFlagSubsampledCoarseReconstruction, (SamplerFlagSubsampled | SamplerFlagSubsampledCoarseReconstruction).native())
	})
	t.Run("MemoryProperties", func(t *testing.T) {
		require.Equal(t, driver.MemoryPropertyUnknown, MemoryPropertyUnknown.native())
		require.Equal(t, driver.MemoryPropertyHostCoherent, MemoryPropertyHostCoherent.native())
	})
	t.Run("ResourceState", func(t *testing.T) {
		require.Equal(t, driver.ResourceStateUnknown, ResourceStateUnknown.native())
		require.Equal(t, driver.ResourceStateUndefined, ResourceStateUndefined.native())
		require.Equal(t, driver.ResourceStateVertexBuffer, ResourceStateVertexBuffer.native())
		require.Equal(t, driver.ResourceStateConstantBuffer, ResourceStateConstantBuffer.native())
		require.Equal(t, driver.ResourceStateIndexBuffer, ResourceStateIndexBuffer.native())
		require.Equal(t, driver.ResourceStateRenderTarget, ResourceStateRenderTarget.native())
		require.Equal(t, driver.ResourceStateUnorderedAccess, ResourceStateUnorderedAccess.native())
		require.Equal(t, driver.ResourceStateDepthWrite, ResourceStateDepthWrite.native())
		require.Equal(t, driver.ResourceStateDepthRead, ResourceStateDepthRead.native())
		require.Equal(t, driver.ResourceStateShaderResource, ResourceStateShaderResource.native())
		require.Equal(t, driver.ResourceStateStreamOut, ResourceStateStreamOut.native())
		require.Equal(t, driver.ResourceStateIndirectArgument, ResourceStateIndirectArgument.native())
		require.Equal(t, driver.ResourceStateCopyDest, ResourceStateCopyDest.native())
		require.Equal(t, driver.ResourceStateCopySource, ResourceStateCopySource.native())
		require.Equal(t, driver.ResourceStateResolveDest, ResourceStateResolveDest.native())
		require.Equal(t, driver.ResourceStateResolveSource, ResourceStateResolveSource.native())
		require.Equal(t, driver.ResourceStateInputAttachment, ResourceStateInputAttachment.native())
		require.Equal(t, driver.ResourceStatePresent, ResourceStatePresent.native())
		require.Equal(t, driver.ResourceStateBuildASRead, ResourceStateBuildASRead.native())
		require.Equal(t, driver.ResourceStateBuildASWrite, ResourceStateBuildASWrite.native())
		require.Equal(t, driver.ResourceStateRayTracing, ResourceStateRayTracing.native())
		require.Equal(t, driver.ResourceStateCommon, ResourceStateCommon.native())
		require.Equal(t, driver.ResourceStateShadingRate, ResourceStateShadingRate.native())
		require.Equal(t, driver.ResourceStateGenericRead, ResourceStateGenericRead.native())
		require.Equal(t, driver.ResourceStateUndefined|driver.ResourceStateVertexBuffer, (ResourceStateUndefined | ResourceStateVertexBuffer).native())
	})
	t.Run("ShaderType", func(t *testing.T) {
		require.Equal(t, driver.ShaderTypeUnknown, ShaderTypeUnknown.native())
		require.Equal(t, driver.ShaderTypeVertex, ShaderTypeVertex.native())
		require.Equal(t, driver.ShaderTypePixel, ShaderTypePixel.native())
		require.Equal(t, driver.ShaderTypeGeometry, ShaderTypeGeometry.native())
		require.Equal(t, driver.ShaderTypeHull, ShaderTypeHull.native())
		require.Equal(t, driver.ShaderTypeDomain, ShaderTypeDomain.native())
		require.Equal(t, driver.ShaderTypeCompute, ShaderTypeCompute.native())
		require.Equal(t, driver.ShaderTypeAmplification, ShaderTypeAmplification.native())
		require.Equal(t, driver.ShaderTypeMesh, ShaderTypeMesh.native())
		require.Equal(t, driver.ShaderTypeRayGen, ShaderTypeRayGen.native())
		require.Equal(t, driver.ShaderTypeRayMiss, ShaderTypeRayMiss.native())
		require.Equal(t, driver.ShaderTypeRayClosestHit, ShaderTypeRayClosestHit.native())
		require.Equal(t, driver.ShaderTypeRayAnyHit, ShaderTypeRayAnyHit.native())
		require.Equal(t, driver.ShaderTypeRayIntersection, ShaderTypeRayIntersection.native())
		require.Equal(t, driver.ShaderTypeCallable, ShaderTypeCallable.native())
		require.Equal(t, driver.ShaderTypeTile, ShaderTypeTile.native())
		require.Equal(t, driver.ShaderTypeAllGraphics, ShaderTypeAllGraphics.native())
		require.Equal(t, driver.ShaderTypeAllMesh, ShaderTypeAllMesh.native())
		require.Equal(t, driver.ShaderTypeAllRayTracing, ShaderTypeAllRayTracing.native())
		require.Equal(t, driver.ShaderTypeAll, ShaderTypeAll.native())
		require.Equal(t, driver.ShaderTypeVertex|driver.ShaderTypePixel, (ShaderTypeVertex | ShaderTypePixel).native())
	})
	t.Run("ShaderCompileFlags", func(t *testing.T) {
		require.Equal(t, driver.ShaderCompileFlagNone, ShaderCompileFlagNone.native())
		require.Equal(t, driver.ShaderCompileFlagEnableUnboundedArrays, ShaderCompileFlagEnableUnboundedArrays.native())
		require.Equal(t, driver.ShaderCompileFlagSkipReflection, ShaderCompileFlagSkipReflection.native())
		require.Equal(t, driver.ShaderCompileFlagAsynchronous, ShaderCompileFlagAsynchronous.native())
		require.Equal(t, driver.ShaderCompileFlagPackMatrixRowMajor, ShaderCompileFlagPackMatrixRowMajor.native())
		require.Equal(t, driver.ShaderCompileFlagHLSLToSpirvViaGLSL, ShaderCompileFlagHLSLToSpirvViaGLSL.native())
		require.Equal(t, driver.ShaderCompileFlagEnableUnboundedArrays|driver.ShaderCompileFlagSkipReflection, (ShaderCompileFlagEnableUnboundedArrays | ShaderCompileFlagSkipReflection).native())
	})
	t.Run("ShaderVariableFlags", func(t *testing.T) {
		require.Equal(t, driver.ShaderVariableFlagNone, ShaderVariableFlagNone.native())
		require.Equal(t, driver.ShaderVariableFlagNoDynamicBuffers, ShaderVariableFlagNoDynamicBuffers.native())
		require.Equal(t, driver.ShaderVariableFlagGeneralInputAttachment, ShaderVariableFlagGeneralInputAttachment.native())
		require.Equal(t, driver.ShaderVariableFlagUnfilterableFloatTextureWebGPU, ShaderVariableFlagUnfilterableFloatTextureWebGPU.native())
		require.Equal(t, driver.ShaderVariableFlagNonFilteringSamplerWebGPU, ShaderVariableFlagNonFilteringSamplerWebGPU.native())
		require.Equal(t, driver.ShaderVariableFlagNoDynamicBuffers|driver.ShaderVariableFlagGeneralInputAttachment, (ShaderVariableFlagNoDynamicBuffers | ShaderVariableFlagGeneralInputAttachment).native())
	})
	t.Run("PipelineResourceFlags", func(t *testing.T) {
		require.Equal(t, driver.PipelineResourceFlagNone, PipelineResourceFlagNone.native())
		require.Equal(t, driver.PipelineResourceFlagNoDynamicBuffers, PipelineResourceFlagNoDynamicBuffers.native())
		require.Equal(t, driver.PipelineResourceFlagCombinedSampler, PipelineResourceFlagCombinedSampler.native())
		require.Equal(t, driver.PipelineResourceFlagFormattedBuffer, PipelineResourceFlagFormattedBuffer.native())
		require.Equal(t, driver.PipelineResourceFlagRuntimeArray, PipelineResourceFlagRuntimeArray.native())
		require.Equal(t, driver.PipelineResourceFlagGeneralInputAttachment, PipelineResourceFlagGeneralInputAttachment.native())
		require.Equal(t, driver.PipelineResourceFlagNoDynamicBuffers|driver.PipelineResourceFlagCombinedSampler, (PipelineResourceFlagNoDynamicBuffers | PipelineResourceFlagCombinedSampler).native())
	})
	t.Run("BindShaderResourcesFlags", func(t *testing.T) {
		require.Equal(t, driver.BindShaderResourcesUpdateStatic, BindShaderResourcesUpdateStatic.native())
		require.Equal(t, driver.BindShaderResourcesUpdateMutable, BindShaderResourcesUpdateMutable.native())
		require.Equal(t, driver.BindShaderResourcesUpdateDynamic, BindShaderResourcesUpdateDynamic.native())
		require.Equal(t, driver.BindShaderResourcesUpdateAll, BindShaderResourcesUpdateAll.native())
		require.Equal(t, driver.BindShaderResourcesKeepExisting, BindShaderResourcesKeepExisting.native())
		require.Equal(t, driver.BindShaderResourcesVerifyAllResolved, BindShaderResourcesVerifyAllResolved.native())
		require.Equal(t, driver.BindShaderResourcesAllowOverwrite, BindShaderResourcesAllowOverwrite.native())
		require.Equal(t, driver.BindShaderResourcesUpdateStatic|driver.BindShaderResourcesUpdateMutable, (BindShaderResourcesUpdateStatic | BindShaderResourcesUpdateMutable).native())
	})
	t.Run("SetShaderResourceFlags", func(t *testing.T) {
		require.Equal(t, driver.SetShaderResourceNone, SetShaderResourceNone.native())
		require.Equal(t, driver.SetShaderResourceAllowOverwrite, SetShaderResourceAllowOverwrite.native())
	})
	t.Run("ShaderResourceVariableTypeFlags", func(t *testing.T) {
		require.Equal(t, driver.ShaderResourceVariableTypeFlagNone, ShaderResourceVariableTypeFlagNone.native())
		require.Equal(t, driver.ShaderResourceVariableTypeFlagStatic, ShaderResourceVariableTypeFlagStatic.native())
		require.Equal(t, driver.ShaderResourceVariableTypeFlagMutable, ShaderResourceVariableTypeFlagMutable.native())
		require.Equal(t, driver.ShaderResourceVariableTypeFlagDynamic, ShaderResourceVariableTypeFlagDynamic.native())
		require.Equal(t, driver.ShaderResourceVariableTypeFlagMutDyn, ShaderResourceVariableTypeFlagMutDyn.native())
		require.Equal(t, driver.ShaderResourceVariableTypeFlagAll, ShaderResourceVariableTypeFlagAll.native())
		require.Equal(t, driver.ShaderResourceVariableTypeFlagStatic|driver.ShaderResourceVariableTypeFlagMutable, (ShaderResourceVariableTypeFlagStatic | ShaderResourceVariableTypeFlagMutable).native())
	})
	t.Run("PSOCreateFlags", func(t *testing.T) {
		require.Equal(t, driver.PSOCreateFlagNone, PSOCreateFlagNone.native())
		require.Equal(t, driver.PSOCreateFlagIgnoreMissingVariables, PSOCreateFlagIgnoreMissingVariables.native())
		require.Equal(t, driver.PSOCreateFlagIgnoreMissingImmutableSamplers, PSOCreateFlagIgnoreMissingImmutableSamplers.native())
		require.Equal(t, driver.PSOCreateFlagDontRemapShaderResources, PSOCreateFlagDontRemapShaderResources.native())
		require.Equal(t, driver.PSOCreateFlagAsynchronous, PSOCreateFlagAsynchronous.native())
		require.Equal(t, driver.PSOCreateFlagIgnoreMissingVariables|driver.PSOCreateFlagIgnoreMissingImmutableSamplers, (PSOCreateFlagIgnoreMissingVariables | PSOCreateFlagIgnoreMissingImmutableSamplers).native())
	})
	t.Run("ColorMask", func(t *testing.T) {
		require.Equal(t, driver.ColorMaskNone, ColorMaskNone.native())
		require.Equal(t, driver.ColorMaskRed, ColorMaskRed.native())
		require.Equal(t, driver.ColorMaskGreen, ColorMaskGreen.native())
		require.Equal(t, driver.ColorMaskBlue, ColorMaskBlue.native())
		require.Equal(t, driver.ColorMaskAlpha, ColorMaskAlpha.native())
		require.Equal(t, driver.ColorMaskRGB, ColorMaskRGB.native())
		require.Equal(t, driver.ColorMaskAll, ColorMaskAll.native())
		require.Equal(t, driver.ColorMaskRed|driver.ColorMaskGreen, (ColorMaskRed | ColorMaskGreen).native())
	})
	t.Run("PipelineStageFlags", func(t *testing.T) {
		require.Equal(t, driver.PipelineStageUndefined, PipelineStageUndefined.native())
		require.Equal(t, driver.PipelineStageTopOfPipe, PipelineStageTopOfPipe.native())
		require.Equal(t, driver.PipelineStageDrawIndirect, PipelineStageDrawIndirect.native())
		require.Equal(t, driver.PipelineStageVertexInput, PipelineStageVertexInput.native())
		require.Equal(t, driver.PipelineStageVertexShader, PipelineStageVertexShader.native())
		require.Equal(t, driver.PipelineStageHullShader, PipelineStageHullShader.native())
		require.Equal(t, driver.PipelineStageDomainShader, PipelineStageDomainShader.native())
		require.Equal(t, driver.PipelineStageGeometryShader, PipelineStageGeometryShader.native())
		require.Equal(t, driver.PipelineStagePixelShader, PipelineStagePixelShader.native())
		require.Equal(t, driver.PipelineStageEarlyFragmentTests, PipelineStageEarlyFragmentTests.native())
		require.Equal(t, driver.PipelineStageLateFragmentTests, PipelineStageLateFragmentTests.native())
		require.Equal(t, driver.PipelineStageRenderTarget, PipelineStageRenderTarget.native())
		require.Equal(t, driver.PipelineStageComputeShader, PipelineStageComputeShader.native())
		require.Equal(t, driver.PipelineStageTransfer, PipelineStageTransfer.native())
		require.Equal(t, driver.PipelineStageBottomOfPipe, PipelineStageBottomOfPipe.native())
		require.Equal(t, driver.PipelineStageHost, PipelineStageHost.native())
		require.Equal(t, driver.PipelineStageConditionalRendering, PipelineStageConditionalRendering.native())
		require.Equal(t, driver.PipelineStageAmplificationShader, PipelineStageAmplificationShader.native())
		require.Equal(t, driver.PipelineStageMeshShader, PipelineStageMeshShader.native())
		require.Equal(t, driver.PipelineStageRayTracingShader, PipelineStageRayTracingShader.native())
		require.Equal(t, driver.PipelineStageShadingRateTexture, PipelineStageShadingRateTexture.native())
		require.Equal(t, driver.PipelineStageFragmentDensityProcess, PipelineStageFragmentDensityProcess.native())
		require.Equal(t, driver.PipelineStageAccelerationStructureBuild, PipelineStageAccelerationStructureBuild.native())
		require.Equal(t, driver.PipelineStageTopOfPipe|driver.PipelineStageDrawIndirect, (PipelineStageTopOfPipe | PipelineStageDrawIndirect).native())
	})
	t.Run("AccessFlags", func(t *testing.T) {
		require.Equal(t, driver.AccessNone, AccessNone.native())
		require.Equal(t, driver.AccessIndirectCommandRead, AccessIndirectCommandRead.native())
		require.Equal(t, driver.AccessIndexRead, AccessIndexRead.native())
		require.Equal(t, driver.AccessVertexRead, AccessVertexRead.native())
		require.Equal(t, driver.AccessUniformRead, AccessUniformRead.native())
		require.Equal(t, driver.AccessInputAttachmentRead, AccessInputAttachmentRead.native())
		require.Equal(t, driver.AccessShaderRead, AccessShaderRead.native())
		require.Equal(t, driver.AccessShaderWrite, AccessShaderWrite.native())
		require.Equal(t, driver.AccessRenderTargetRead, AccessRenderTargetRead.native())
		require.Equal(t, driver.AccessRenderTargetWrite, AccessRenderTargetWrite.native())
		require.Equal(t, driver.AccessDepthStencilRead, AccessDepthStencilRead.native())
		require.Equal(t, driver.AccessDepthStencilWrite, AccessDepthStencilWrite.native())
		require.Equal(t, driver.AccessCopySrc, AccessCopySrc.native())
		require.Equal(t, driver.AccessCopyDst, AccessCopyDst.native())
		require.Equal(t, driver.AccessHostRead, AccessHostRead.native())
		require.Equal(t, driver.AccessHostWrite, AccessHostWrite.native())
		require.Equal(t, driver.AccessMemoryRead, AccessMemoryRead.native())
		require.Equal(t, driver.AccessMemoryWrite, AccessMemoryWrite.native())
		require.Equal(t, driver.AccessConditionalRenderingRead, AccessConditionalRenderingRead.native())
		require.Equal(t, driver.AccessAccelerationStructureRead, AccessAccelerationStructureRead.native())
		require.Equal(t, driver.AccessAccelerationStructureWrite, AccessAccelerationStructureWrite.native())
		require.Equal(t, driver.AccessShadingRateTextureRead, AccessShadingRateTextureRead.native())
		require.Equal(t, driver.AccessFragmentDensityMapRead, AccessFragmentDensityMapRead.native())
		require.Equal(t, driver.AccessIndirectCommandRead|driver.AccessIndexRead, (AccessIndirectCommandRead | AccessIndexRead).native())
	})
	t.Run("ShadingRateCombiner", func(t *testing.T) {
		require.Equal(t, driver.ShadingRateCombinerPassthrough, ShadingRateCombinerPassthrough.native())
		require.Equal(t, driver.ShadingRateCombinerOverride, ShadingRateCombinerOverride.native())
		require.Equal(t, driver.ShadingRateCombinerMin, ShadingRateCombinerMin.native())
		require.Equal(t, driver.ShadingRateCombinerMax, ShadingRateCombinerMax.native())
		require.Equal(t, driver.ShadingRateCombinerSum, ShadingRateCombinerSum.native())
		require.Equal(t, driver.ShadingRateCombinerMul, ShadingRateCombinerMul.native())
		require.Equal(t, driver.ShadingRateCombinerPassthrough|driver.ShadingRateCombinerOverride, (ShadingRateCombinerPassthrough | ShadingRateCombinerOverride).native())
	})
	t.Run("PipelineShadingRateFlags", func(t *testing.T) {
		require.Equal(t, driver.PipelineShadingRateFlagNone, PipelineShadingRateFlagNone.native())
		require.Equal(t, driver.PipelineShadingRateFlagPerPrimitive, PipelineShadingRateFlagPerPrimitive.native())
		require.Equal(t, driver.PipelineShadingRateFlagTextureBased, PipelineShadingRateFlagTextureBased.native())
		require.Equal(t, driver.PipelineShadingRateFlagPerPrimitive|driver.PipelineShadingRateFlagTextureBased, (PipelineShadingRateFlagPerPrimitive | PipelineShadingRateFlagTextureBased).native())
	})
	t.Run("PSOCacheMode", func(t *testing.T) {
		require.Equal(t, driver.PSOCacheModeLoad, PSOCacheModeLoad.native())
		require.Equal(t, driver.PSOCacheModeStore, PSOCacheModeStore.native())
		require.Equal(t, driver.PSOCacheModeLoadStore, PSOCacheModeLoadStore.native())
		require.Equal(t, driver.PSOCacheModeLoad|driver.PSOCacheModeStore, (PSOCacheModeLoad | PSOCacheModeStore).native())
	})
	t.Run("PSOCacheFlags", func(t *testing.T) {
		require.Equal(t, driver.PSOCacheFlagNone, PSOCacheFlagNone.native())
		require.Equal(t, driver.PSOCacheFlagVerbose, PSOCacheFlagVerbose.native())
	})
	t.Run("MapFlags", func(t *testing.T) {
		require.Equal(t, driver.MapFlagNone, MapFlagNone.native())
		require.Equal(t, driver.MapFlagDoNotWait, MapFlagDoNotWait.native())
		require.Equal(t, driver.MapFlagDiscard, MapFlagDiscard.native())
		require.Equal(t, driver.MapFlagNoOverwrite, MapFlagNoOverwrite.native())
		require.Equal(t, driver.MapFlagDoNotWait|driver.MapFlagDiscard, (MapFlagDoNotWait | MapFlagDiscard).native())
	})
	t.Run("StateTransitionFlags", func(t *testing.T) {
		require.Equal(t, driver.StateTransitionFlagNone, StateTransitionFlagNone.native())
		require.Equal(t, driver.StateTransitionFlagUpdateState, StateTransitionFlagUpdateState.native())
		require.Equal(t, driver.StateTransitionFlagDiscardContent, StateTransitionFlagDiscardContent.native())
		require.Equal(t, driver.StateTransitionFlagAliasing, StateTransitionFlagAliasing.native())
		require.Equal(t, driver.StateTransitionFlagUpdateState|driver.StateTransitionFlagDiscardContent, (StateTransitionFlagUpdateState | StateTransitionFlagDiscardContent).native())
	})
	t.Run("SetVertexBuffersFlags", func(t *testing.T) {
		require.Equal(t, driver.SetVertexBuffersFlagNone, SetVertexBuffersFlagNone.native())
		require.Equal(t, driver.SetVertexBuffersFlagReset, SetVertexBuffersFlagReset.native())
	})
	t.Run("DrawFlags", func(t *testing.T) {
		require.Equal(t, driver.DrawFlagNone, DrawFlagNone.native())
		require.Equal(t, driver.DrawFlagVerifyStates, DrawFlagVerifyStates.native())
		require.Equal(t, driver.DrawFlagVerifyDrawAttribs, DrawFlagVerifyDrawAttribs.native())
		require.Equal(t, driver.DrawFlagVerifyRenderTargets, DrawFlagVerifyRenderTargets.native())
		require.Equal(t, driver.DrawFlagVerifyAll, DrawFlagVerifyAll.native())
		require.Equal(t, driver.DrawFlagDynamicResourceBuffersIntact, DrawFlagDynamicResourceBuffersIntact.native())
		require.Equal(t, driver.DrawFlagVerifyStates|driver.DrawFlagVerifyDrawAttribs, (DrawFlagVerifyStates | DrawFlagVerifyDrawAttribs).native())
	})
	t.Run("ClearDepthStencilFlags", func(t *testing.T) {
		require.Equal(t, driver.ClearDepthStencilFlagNone, ClearDepthStencilFlagNone.native())
		require.Equal(t, driver.ClearDepthStencilFlagDepth, ClearDepthStencilFlagDepth.native())
		require.Equal(t, driver.ClearDepthStencilFlagStencil, ClearDepthStencilFlagStencil.native())
		require.Equal(t, driver.ClearDepthStencilFlagDepth|driver.ClearDepthStencilFlagStencil, (ClearDepthStencilFlagDepth | ClearDepthStencilFlagStencil).native())
	})
	t.Run("RayTracingBuildAsFlags", func(t *testing.T) {
		require.Equal(t, driver.RayTracingBuildAsNone, RayTracingBuildAsNone.native())
		require.Equal(t, driver.RayTracingBuildAsAllowUpdate, RayTracingBuildAsAllowUpdate.native())
		require.Equal(t, driver.RayTracingBuildAsAllowCompaction, RayTracingBuildAsAllowCompaction.native())
		require.Equal(t, driver.RayTracingBuildAsPreferFastTrace, RayTracingBuildAsPreferFastTrace.native())
		require.Equal(t, driver.RayTracingBuildAsPreferFastBuild, RayTracingBuildAsPreferFastBuild.native())
		require.Equal(t, driver.RayTracingBuildAsLowMemory, RayTracingBuildAsLowMemory.native())
		require.Equal(t, driver.RayTracingBuildAsAllowUpdate|driver.RayTracingBuildAsAllowCompaction, (RayTracingBuildAsAllowUpdate | RayTracingBuildAsAllowCompaction).native())
	})
	t.Run("RayTracingGeometryFlags", func(t *testing.T) {
		require.Equal(t, driver.RayTracingGeometryFlagNone, RayTracingGeometryFlagNone.native())
		require.Equal(t, driver.RayTracingGeometryFlagOpaque, RayTracingGeometryFlagOpaque.native())
		require.Equal(t, driver.RayTracingGeometryFlagNoDuplicateAnyHitInvocation, RayTracingGeometryFlagNoDuplicateAnyHitInvocation.native())
		require.Equal(t, driver.RayTracingGeometryFlagOpaque|driver.RayTracingGeometryFlagNoDuplicateAnyHitInvocation, (RayTracingGeometryFlagOpaque | RayTracingGeometryFlagNoDuplicateAnyHitInvocation).native())
	})
	t.Run("RayTracingInstanceFlags", func(t *testing.T) {
		require.Equal(t, driver.RayTracingInstanceFlagNone, RayTracingInstanceFlagNone.native())
		require.Equal(t, driver.RayTracingInstanceFlagTriangleFacingCullDisable, RayTracingInstanceFlagTriangleFacingCullDisable.native())
		require.Equal(t, driver.RayTracingInstanceFlagTriangleFrontCounterclockwise, RayTracingInstanceFlagTriangleFrontCounterclockwise.native())
		require.Equal(t, driver.RayTracingInstanceFlagForceOpaque, RayTracingInstanceFlagForceOpaque.native())
		require.Equal(t, driver.RayTracingInstanceFlagForceNoOpaque, RayTracingInstanceFlagForceNoOpaque.native())
		require.Equal(t, driver.RayTracingInstanceFlagTriangleFacingCullDisable|driver.RayTracingInstanceFlagTriangleFrontCounterclockwise, (RayTracingInstanceFlagTriangleFacingCullDisable | RayTracingInstanceFlagTriangleFrontCounterclockwise).native())
	})
	t.Run("VerifySBTFlags", func(t *testing.T) {
		require.Equal(t, driver.VerifySBTFlagShaderOnly, VerifySBTFlagShaderOnly.native())
		require.Equal(t, driver.VerifySBTFlagShaderRecord, VerifySBTFlagShaderRecord.native())
		require.Equal(t, driver.VerifySBTFlagTLAS, VerifySBTFlagTLAS.native())
		require.Equal(t, driver.VerifySBTFlagAll, VerifySBTFlagAll.native())
		require.Equal(t, driver.VerifySBTFlagShaderOnly|driver.VerifySBTFlagShaderRecord, (VerifySBTFlagShaderOnly | VerifySBTFlagShaderRecord).native())
	})
	t.Run("SwapChainUsageFlags", func(t *testing.T) {
		require.Equal(t, driver.SwapChainUsageNone, SwapChainUsageNone.native())
		require.Equal(t, driver.SwapChainUsageRenderTarget, SwapChainUsageRenderTarget.native())
		require.Equal(t, driver.SwapChainUsageShaderResource, SwapChainUsageShaderResource.native())
		require.Equal(t, driver.SwapChainUsageInputAttachment, SwapChainUsageInputAttachment.native())
		require.Equal(t, driver.SwapChainUsageCopySource, SwapChainUsageCopySource.native())
		require.Equal(t, driver.SwapChainUsageRenderTarget|driver.SwapChainUsageShaderResource, (SwapChainUsageRenderTarget | SwapChainUsageShaderResource).native())
	})
	t.Run("CommandQueueType", func(t *testing.T) {
		require.Equal(t, driver.CommandQueueTypeUnknown, CommandQueueTypeUnknown.native())
		require.Equal(t, driver.CommandQueueTypeTransfer, CommandQueueTypeTransfer.native())
		require.Equal(t, driver.CommandQueueTypeCompute, CommandQueueTypeCompute.native())
		require.Equal(t, driver.CommandQueueTypeGraphics, CommandQueueTypeGraphics.native())
		require.Equal(t, driver.CommandQueueTypeSparseBinding, CommandQueueTypeSparseBinding.native())
		require.Equal(t, driver.CommandQueueTypeTransfer|driver.CommandQueueTypeSparseBinding, (CommandQueueTypeTransfer | CommandQueueTypeSparseBinding).native())
	})
	t.Run("ValidationFlags", func(t *testing.T) {
		require.Equal(t, driver.ValidationFlagNone, ValidationFlagNone.native())
		require.Equal(t, driver.ValidationFlagCheckShaderBufferSize, ValidationFlagCheckShaderBufferSize.native())
	})
}
